package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sony/gobreaker"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"zenith-project/backend/handlers"
	"zenith-project/backend/llm"
	"zenith-project/backend/logging"
	"zenith-project/backend/middleware"
	"zenith-project/backend/realtime"
	"zenith-project/backend/repositories"
	"zenith-project/backend/services"
)

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func main() {
	logging.InitLogger()
	logging.Logger.Info("Event ID: SERVICE_START, Description: Starting ZenithPM backend...")

	if err := godotenv.Load(".env"); err != nil {
		logging.Logger.Warnf("Event ID: ENV_LOAD_ERROR, Description: Error loading .env file: %v", err)
	}

	mongoURI := os.Getenv("MONGO_URI")
	mongoDBName := os.Getenv("MONGO_DB_NAME")
	if mongoDBName == "" {
		mongoDBName = "zenithpm"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		logging.Logger.Fatalf("Event ID: DB_CONNECTION_FAILED, Description: Database connection for MongoDB failed: %v", err)
	}
	defer mongoClient.Disconnect(context.Background())

	if err := mongoClient.Ping(ctx, nil); err != nil {
		logging.Logger.Fatalf("Event ID: DB_PING_FAILED, Description: MongoDB connection ping error: %v", err)
	}
	logging.Logger.Infof("Event ID: DB_CONNECTED, Description: Successfully connected to MongoDB at %s.", mongoURI)

	db := mongoClient.Database(mongoDBName)
	usersCollection := db.Collection("users")
	projectsCollection := db.Collection("projects")
	tasksCollection := db.Collection("tasks")
	teamsCollection := db.Collection("teams")
	invitationsCollection := db.Collection("invitations")

	notificationRepo, err := repositories.NewNotificationRepo()
	if err != nil {
		logging.Logger.Fatalf("Event ID: CASS_CONNECTION_FAILED, Description: Cassandra connection failed: %v", err)
	}
	defer notificationRepo.CloseSession()
	if err := notificationRepo.CreateTable(); err != nil {
		logging.Logger.Fatalf("Event ID: CASS_TABLE_FAILED, Description: Creating notifications table failed: %v", err)
	}

	llmBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "llm-cb",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger.Infof("Event ID: CIRCUIT_BREAKER_STATE_CHANGE, Description: Circuit Breaker '%s' changed from '%s' to '%s'", name, from.String(), to.String())
		},
	})
	llmClient := llm.NewClient(os.Getenv("LLM_API_URL"), os.Getenv("LLM_API_KEY"), os.Getenv("LLM_MODEL"), llmBreaker)

	userService := services.NewUserService(usersCollection)
	projectService := services.NewProjectService(projectsCollection, tasksCollection)
	taskService := services.NewTaskService(tasksCollection)
	teamService := services.NewTeamService(teamsCollection)
	notificationService := services.NewNotificationService(notificationRepo)
	invitationService := services.NewInvitationService(invitationsCollection, userService, teamService, projectService, notificationService)
	boardService := services.NewBoardService(tasksCollection, taskService)
	aiService := services.NewAIService(llmClient, taskService, projectService)

	channels := &realtime.Channels{
		TasksByProject:    realtime.NewRegistry(tasksCollection, "projectId", realtime.DecodeTask),
		TasksByUser:       realtime.NewRegistry(tasksCollection, "assignee.id", realtime.DecodeTask),
		TasksByTeam:       realtime.NewRegistry(tasksCollection, "teamId", realtime.DecodeTask),
		TeamsByProject:    realtime.NewRegistry(teamsCollection, "projectIds", realtime.DecodeTeam),
		TeamsByUser:       realtime.NewRegistry(teamsCollection, "memberIds", realtime.DecodeTeam),
		InvitationsByUser: realtime.NewRegistry(invitationsCollection, "recipientEmail", realtime.DecodeInvitation),
	}

	hub := realtime.NewHub()
	go hub.Run()

	loginHandler := handlers.NewLoginHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService, userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	teamHandler := handlers.NewTeamHandler(teamService, userService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	boardHandler := handlers.NewBoardHandler(boardService)
	aiHandler := handlers.NewAIHandler(aiService)
	wsHandler := handlers.NewWSHandler(hub, channels)

	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())

	r.HandleFunc("/api/auth/register", loginHandler.Register).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/api/auth/login", loginHandler.Login).Methods(http.MethodPost, http.MethodOptions)
	r.HandleFunc("/ws", wsHandler.ServeWS)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.JWTAuthMiddleware)

	api.HandleFunc("/users/me", loginHandler.Profile).Methods(http.MethodGet)

	api.HandleFunc("/projects", projectHandler.CreateProject).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/projects", projectHandler.GetProjectsForUser).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}", projectHandler.GetProjectByID).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}", projectHandler.UpdateProject).Methods(http.MethodPatch, http.MethodOptions)
	api.HandleFunc("/projects/{projectId}", projectHandler.DeleteProject).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/projects/{projectId}/members", projectHandler.AddMember).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/projects/{projectId}/members/{memberId}", projectHandler.RemoveMember).Methods(http.MethodDelete, http.MethodOptions)

	api.HandleFunc("/projects/{projectId}/tasks", taskHandler.CreateTask).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/projects/{projectId}/tasks", taskHandler.GetTasksByProject).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{taskId}", taskHandler.GetTaskByID).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{taskId}", taskHandler.UpdateTask).Methods(http.MethodPatch, http.MethodOptions)
	api.HandleFunc("/tasks/{taskId}", taskHandler.DeleteTask).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/tasks/{taskId}/status", taskHandler.ChangeTaskStatus).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/tasks/{taskId}/assignee", taskHandler.AssignTask).Methods(http.MethodPut, http.MethodOptions)

	api.HandleFunc("/projects/{projectId}/board", boardHandler.GetBoard).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}/board/move", boardHandler.MoveTask).Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/teams", teamHandler.CreateTeam).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/teams", teamHandler.GetTeamsForUser).Methods(http.MethodGet)
	api.HandleFunc("/teams/{teamId}", teamHandler.GetTeamByID).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}/teams", teamHandler.GetTeamsForProject).Methods(http.MethodGet)
	api.HandleFunc("/teams/{teamId}/members", teamHandler.AddMember).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/teams/{teamId}/members/{memberId}", teamHandler.RemoveMember).Methods(http.MethodDelete, http.MethodOptions)
	api.HandleFunc("/teams/{teamId}/members/{memberId}/role", teamHandler.ChangeMemberRole).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/teams/{teamId}/projects/{projectId}", teamHandler.AttachProject).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/teams/{teamId}/projects/{projectId}", teamHandler.DetachProject).Methods(http.MethodDelete, http.MethodOptions)

	api.HandleFunc("/invitations", invitationHandler.CreateInvitation).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/invitations", invitationHandler.GetInvitationsForUser).Methods(http.MethodGet)
	api.HandleFunc("/invitations/{invitationId}/respond", invitationHandler.RespondToInvitation).Methods(http.MethodPost, http.MethodOptions)

	api.HandleFunc("/notifications", notificationHandler.GetNotifications).Methods(http.MethodGet)
	api.HandleFunc("/notifications/{notificationId}/read", notificationHandler.MarkAsRead).Methods(http.MethodPut, http.MethodOptions)
	api.HandleFunc("/notifications/{notificationId}", notificationHandler.DeleteNotification).Methods(http.MethodDelete, http.MethodOptions)

	api.HandleFunc("/projects/{projectId}/ai/breakdown", aiHandler.BreakdownIntoTasks).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/projects/{projectId}/ai/suggest-assignee", aiHandler.SuggestAssignee).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/ai/summarize", aiHandler.SummarizeNotes).Methods(http.MethodPost, http.MethodOptions)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	logging.Logger.Infof("Event ID: SERVER_START, Description: Server running on port %s", port)
	if err := http.ListenAndServe(":"+port, enableCORS(r)); err != nil {
		logging.Logger.Fatalf("Event ID: SERVER_FAILED, Description: Server failed to start: %v", err)
	}
}
