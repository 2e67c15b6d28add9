package realtime

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"zenith-project/backend/logging"
	"zenith-project/backend/metrics"
)

// CancelFunc zatvara jedan pretplatnički kanal. Bezbedno je pozvati je
// više puta; svaki poziv posle prvog je no-op.
type CancelFunc func()

// Source je ono na šta se View vezuje. Registry je proizvodna implementacija.
type Source[T any] interface {
	Subscribe(scopeID string, onChange func([]T)) (CancelFunc, error)
}

// Registry otvara živi upit nad jednom kolekcijom filtriran po scope polju
// i isporučuje pun snapshot kolekcije na svaku promenu. Pretplate na isti
// scope dele jedan change stream sa brojanjem referenci: poslednja otkazana
// pretplata zatvara stream.
type Registry[T any] struct {
	collection *mongo.Collection
	scopeField string
	decode     Projector[T]

	mu     sync.Mutex
	scopes map[string]*scope[T]
}

func NewRegistry[T any](collection *mongo.Collection, scopeField string, decode Projector[T]) *Registry[T] {
	return &Registry[T]{
		collection: collection,
		scopeField: scopeField,
		decode:     decode,
		scopes:     make(map[string]*scope[T]),
	}
}

// Subscribe registruje onChange za dati scope. Inicijalno učitavanje se
// računa kao prva isporuka. Redosled u snapshotu je redosled iz baze;
// domensko sortiranje je posao pozivaoca.
func (r *Registry[T]) Subscribe(scopeID string, onChange func([]T)) (CancelFunc, error) {
	if scopeID == "" {
		return nil, ErrEmptyScope
	}

	r.mu.Lock()
	sc, ok := r.scopes[scopeID]
	if !ok {
		sc = newScope[T](scopeID)
		r.scopes[scopeID] = sc

		ctx, stop := context.WithCancel(context.Background())
		sc.stop = stop
		go sc.fanout()
		go r.watch(ctx, sc)
	}
	subID := sc.add(onChange)
	r.mu.Unlock()

	metrics.ActiveSubscriptions.Inc()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			if sc.remove(subID) == 0 {
				sc.stop()
				sc.shutdown()
				delete(r.scopes, scopeID)
			}
			r.mu.Unlock()
			metrics.ActiveSubscriptions.Dec()
		})
	}, nil
}

// watch drži change stream otvoren dok poslednji pretplatnik ne ode.
// Greška transporta se loguje i kanal tiho staje; pretplatnici posle toga
// ne dobijaju ništa.
func (r *Registry[T]) watch(ctx context.Context, sc *scope[T]) {
	// Delete događaji ne nose fullDocument, pa se hvataju posebnom granom.
	pipeline := mongo.Pipeline{bson.D{{Key: "$match", Value: bson.M{"$or": bson.A{
		bson.M{"fullDocument." + r.scopeField: sc.id},
		bson.M{"operationType": "delete"},
	}}}}}
	opts := options.ChangeStream().SetFullDocument(options.UpdateLookup)

	// Stream se otvara pre prvog čitanja: upis koji stigne između čitanja
	// i otvaranja bi inače ostao bez događaja, a pretplatnici sa ustajalim
	// snapshotom do sledeće nepovezane promene.
	stream, err := r.collection.Watch(ctx, pipeline, opts)
	if err != nil {
		if ctx.Err() == nil {
			logging.Logger.Errorf("Event ID: SUBSCRIPTION_STREAM_OPEN_FAILED, Description: Change stream for %s/%s=%s could not be opened: %v", r.collection.Name(), r.scopeField, sc.id, err)
		}
		return
	}
	defer stream.Close(context.Background())

	items, err := r.loadSnapshot(ctx, sc.id)
	if err != nil {
		if ctx.Err() == nil {
			logging.Logger.Errorf("Event ID: SNAPSHOT_LOAD_FAILED, Description: Initial snapshot for %s/%s=%s failed: %v", r.collection.Name(), r.scopeField, sc.id, err)
		}
		return
	}
	sc.publish(items, allSubscribers)
	metrics.SnapshotsDelivered.WithLabelValues(r.collection.Name()).Inc()

	for stream.Next(ctx) {
		items, err := r.loadSnapshot(ctx, sc.id)
		if err != nil {
			if ctx.Err() == nil {
				logging.Logger.Errorf("Event ID: SNAPSHOT_LOAD_FAILED, Description: Snapshot reload for %s/%s=%s failed: %v", r.collection.Name(), r.scopeField, sc.id, err)
			}
			return
		}
		sc.publish(items, allSubscribers)
		metrics.SnapshotsDelivered.WithLabelValues(r.collection.Name()).Inc()
	}

	if err := stream.Err(); err != nil && ctx.Err() == nil {
		logging.Logger.Errorf("Event ID: SUBSCRIPTION_STREAM_ERROR, Description: Change stream for %s/%s=%s stopped: %v", r.collection.Name(), r.scopeField, sc.id, err)
	}
}

// loadSnapshot izvršava filtrirani Find i projektuje svaki dokument.
// Dokument koji ne može da se dekodira se loguje i preskače.
func (r *Registry[T]) loadSnapshot(ctx context.Context, scopeID string) ([]T, error) {
	cursor, err := r.collection.Find(ctx, bson.M{r.scopeField: scopeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(context.Background())

	items := make([]T, 0)
	for cursor.Next(ctx) {
		item, err := r.decode(bson.Raw(cursor.Current))
		if err != nil {
			logging.Logger.Warnf("Event ID: SNAPSHOT_DECODE_FAILED, Description: Skipping undecodable document in %s: %v", r.collection.Name(), err)
			continue
		}
		items = append(items, item)
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const allSubscribers = -1

type delivery[T any] struct {
	items []T
	only  int
}

// scope je jedan deljeni kanal: svi pretplatnici istog scope-a dobijaju
// isporuke iz jedne fanout petlje, pa se snapshoti za isti holder nikad
// ne preklapaju.
type scope[T any] struct {
	id   string
	stop context.CancelFunc

	mu     sync.Mutex
	subs   map[int]func([]T)
	nextID int
	latest []T
	loaded bool

	queue chan delivery[T]
	done  chan struct{}
}

func newScope[T any](id string) *scope[T] {
	return &scope[T]{
		id:    id,
		subs:  make(map[int]func([]T)),
		queue: make(chan delivery[T], 64),
		done:  make(chan struct{}),
	}
}

// add registruje pretplatnika; ako je snapshot već učitan, novi pretplatnik
// odmah dobija tekuće stanje bez drugog server-side streama.
func (s *scope[T]) add(onChange func([]T)) int {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = onChange
	loaded := s.loaded
	latest := s.latest
	s.mu.Unlock()

	if loaded {
		s.enqueue(delivery[T]{items: latest, only: id})
	}
	return id
}

func (s *scope[T]) remove(id int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.subs, id)
	return len(s.subs)
}

func (s *scope[T]) publish(items []T, only int) {
	if only == allSubscribers {
		s.mu.Lock()
		s.latest = items
		s.loaded = true
		s.mu.Unlock()
	}
	s.enqueue(delivery[T]{items: items, only: only})
}

func (s *scope[T]) enqueue(d delivery[T]) {
	select {
	case s.queue <- d:
	case <-s.done:
	}
}

func (s *scope[T]) shutdown() {
	close(s.done)
}

// fanout serijalizuje isporuku: nijedan pretplatnik ne vidi dva snapshota
// koja se obrađuju preklopljeno.
func (s *scope[T]) fanout() {
	for {
		select {
		case d := <-s.queue:
			s.mu.Lock()
			targets := make([]func([]T), 0, len(s.subs))
			if d.only == allSubscribers {
				for _, fn := range s.subs {
					targets = append(targets, fn)
				}
			} else if fn, ok := s.subs[d.only]; ok {
				targets = append(targets, fn)
			}
			s.mu.Unlock()

			for _, fn := range targets {
				fn(d.items)
			}
		case <-s.done:
			return
		}
	}
}
