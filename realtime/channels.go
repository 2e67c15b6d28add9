package realtime

import (
	"fmt"

	"zenith-project/backend/models"
)

// Imena kanala koja klijent sme da traži preko WebSocket-a.
const (
	ChannelTasksOfProject    = "tasks-of-project"
	ChannelTasksOfUser       = "tasks-of-user"
	ChannelTasksOfTeam       = "tasks-of-team"
	ChannelTeamsOfProject    = "teams-of-project"
	ChannelTeamsOfUser       = "teams-of-user"
	ChannelInvitationsOfUser = "invitations-of-user"
)

// Channels grupiše žive upite po imenu kanala.
type Channels struct {
	TasksByProject    *Registry[models.Task]
	TasksByUser       *Registry[models.Task]
	TasksByTeam       *Registry[models.Task]
	TeamsByProject    *Registry[models.Team]
	TeamsByUser       *Registry[models.Team]
	InvitationsByUser *Registry[models.Invitation]
}

// Open otvara pretplatu na imenovani kanal i prosleđuje svaki snapshot
// push funkciji kao vrednost spremnu za JSON enkodiranje.
func (c *Channels) Open(channel, scope string, push func(interface{})) (CancelFunc, error) {
	switch channel {
	case ChannelTasksOfProject:
		return subscribeAny(c.TasksByProject, scope, push)
	case ChannelTasksOfUser:
		return subscribeAny(c.TasksByUser, scope, push)
	case ChannelTasksOfTeam:
		return subscribeAny(c.TasksByTeam, scope, push)
	case ChannelTeamsOfProject:
		return subscribeAny(c.TeamsByProject, scope, push)
	case ChannelTeamsOfUser:
		return subscribeAny(c.TeamsByUser, scope, push)
	case ChannelInvitationsOfUser:
		return subscribeAny(c.InvitationsByUser, scope, push)
	default:
		return nil, fmt.Errorf("unknown channel: %s", channel)
	}
}

// Svaka pretplata dobija svoj View: kolekcija se menja u celosti na svaku
// isporuku, a zatvaranje kanala ide kroz View.Close.
func subscribeAny[T any](r *Registry[T], scope string, push func(interface{})) (CancelFunc, error) {
	view := NewView(r)
	view.Notify(func(items []T) {
		push(items)
	})
	if err := view.Bind(scope); err != nil {
		return nil, err
	}
	return view.Close, nil
}
