package wizard

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"venuehub/internal/domain/draft"
	"venuehub/internal/domain/flow"
)

type session struct {
	mu      sync.Mutex
	busy    bool
	ownerID int64
	saved   bool
	state   State
}

// Service keeps wizard sessions in memory. A session id doubles as the id of
// its draft, so saving twice updates the same draft.
type Service struct {
	engine   *Engine
	drafts   draft.Store
	listings ListingCreator
	images   ImageIngestor
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewService(engine *Engine, drafts draft.Store, listings ListingCreator, images ImageIngestor) *Service {
	return &Service{
		engine:   engine,
		drafts:   drafts,
		listings: listings,
		images:   images,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

func (s *Service) Categories() []CategoryResponse {
	defs := s.engine.Catalog().Categories()
	out := make([]CategoryResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, newCategoryResponse(d))
	}
	return out
}

func (s *Service) Start(ownerID int64, category flow.Category) (View, error) {
	st, err := s.engine.Start(category)
	if err != nil {
		return View{}, err
	}
	id := uuid.NewString()
	sess := &session{ownerID: ownerID, state: st}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	log.Debug().Str("wizard_id", id).Int64("user_id", ownerID).Str("category", string(category)).Msg("wizard started")
	return s.view(id, sess), nil
}

func (s *Service) Get(ownerID int64, id string) (View, error) {
	sess, err := s.session(ownerID, id)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.view(id, sess), nil
}

// SetAnswer decodes raw as the payload of key and stores it.
func (s *Service) SetAnswer(ownerID int64, id string, key flow.StepKey, raw json.RawMessage) (View, error) {
	a, err := DecodeAnswer(key, raw)
	if err != nil {
		return View{}, err
	}
	return s.apply(ownerID, id, func(st State) (State, error) {
		return s.engine.SetAnswer(st, key, a)
	})
}

// AddPhotos ingests files and appends their references to the photos answer.
// The session is busy while ingestion runs.
func (s *Service) AddPhotos(ctx context.Context, ownerID int64, id string, files []*multipart.FileHeader) (View, error) {
	sess, err := s.session(ownerID, id)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	if sess.busy {
		sess.mu.Unlock()
		return View{}, ErrOperationInFlight
	}
	if !sess.state.Flow.Contains(flow.StepPhotos) {
		sess.mu.Unlock()
		return View{}, ErrStepNotInFlow
	}
	// Files past MaxPhotos would be dropped from the answer, so they are
	// never stored.
	room := MaxPhotos
	if cur, ok := sess.state.Answers[flow.StepPhotos].(PhotosAnswer); ok {
		room -= len(cur.Photos)
	}
	if len(files) > 0 && room <= 0 {
		v := s.view(id, sess)
		sess.mu.Unlock()
		return v, nil
	}
	if room > 0 && len(files) > room {
		files = files[:room]
	}
	sess.busy = true
	sess.mu.Unlock()

	urls, ierr := s.images.Ingest(ctx, ownerID, files)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.busy = false
	if ierr != nil {
		return View{}, ierr
	}

	var photos []string
	if cur, ok := sess.state.Answers[flow.StepPhotos].(PhotosAnswer); ok {
		photos = append(photos, cur.Photos...)
	}
	photos = append(photos, urls...)

	next, err := s.engine.SetAnswer(sess.state, flow.StepPhotos, PhotosAnswer{Photos: photos})
	if err != nil {
		return View{}, err
	}
	sess.state = next
	return s.view(id, sess), nil
}

// Advance moves to the next step. Advancing past the last step submits the
// listing, ends the session and removes its draft.
func (s *Service) Advance(ctx context.Context, ownerID int64, id string) (Outcome, error) {
	sess, err := s.session(ownerID, id)
	if err != nil {
		return Outcome{}, err
	}

	sess.mu.Lock()
	if sess.busy {
		sess.mu.Unlock()
		return Outcome{}, ErrOperationInFlight
	}
	next, tr, err := s.engine.Advance(sess.state)
	if err != nil {
		sess.mu.Unlock()
		return Outcome{}, err
	}
	if tr == TransitionNext {
		sess.state = next
		v := s.view(id, sess)
		sess.mu.Unlock()
		return Outcome{Transition: tr.String(), Wizard: &v}, nil
	}

	sess.busy = true
	snapshot := sess.state
	sess.mu.Unlock()

	l, cerr := s.listings.Create(ctx, ownerID, Flatten(snapshot))

	sess.mu.Lock()
	saved := sess.saved
	if cerr != nil {
		sess.busy = false
		sess.mu.Unlock()
		log.Warn().Err(cerr).Str("wizard_id", id).Msg("listing submission failed")
		return Outcome{}, cerr
	}
	// A submitted session stays busy: callers still holding it get
	// ErrOperationInFlight until drop makes it unreachable.
	sess.mu.Unlock()

	s.drop(id)
	if saved {
		if err := s.drafts.Delete(ctx, id); err != nil {
			log.Warn().Err(err).Str("draft_id", id).Msg("failed to delete draft of completed wizard")
		}
	}

	log.Info().Str("wizard_id", id).Str("listing_id", l.ID).Int64("user_id", ownerID).Msg("wizard completed")
	return Outcome{Transition: tr.String(), Listing: l}, nil
}

// Retreat moves back one step. Retreating from the first step ends the
// session; a saved draft is kept.
func (s *Service) Retreat(ownerID int64, id string) (Outcome, error) {
	sess, err := s.session(ownerID, id)
	if err != nil {
		return Outcome{}, err
	}

	sess.mu.Lock()
	if sess.busy {
		sess.mu.Unlock()
		return Outcome{}, ErrOperationInFlight
	}
	next, tr := s.engine.Retreat(sess.state)
	if tr == TransitionExit {
		sess.mu.Unlock()
		s.drop(id)
		return Outcome{Transition: tr.String()}, nil
	}
	sess.state = next
	v := s.view(id, sess)
	sess.mu.Unlock()
	return Outcome{Transition: tr.String(), Wizard: &v}, nil
}

// SaveDraft writes the current state to the draft store.
func (s *Service) SaveDraft(ctx context.Context, ownerID int64, id string) (draft.Summary, error) {
	sess, err := s.session(ownerID, id)
	if err != nil {
		return draft.Summary{}, err
	}

	sess.mu.Lock()
	if sess.busy {
		sess.mu.Unlock()
		return draft.Summary{}, ErrOperationInFlight
	}
	d, err := ToDraft(id, ownerID, sess.state, s.now())
	if err != nil {
		sess.mu.Unlock()
		return draft.Summary{}, err
	}
	sess.busy = true
	sess.mu.Unlock()

	serr := s.drafts.Save(ctx, d)

	sess.mu.Lock()
	sess.busy = false
	if serr == nil {
		sess.saved = true
	}
	sess.mu.Unlock()
	if serr != nil {
		return draft.Summary{}, serr
	}
	return d.Summary(), nil
}

// Resume opens a session from a saved draft. An open session for the same
// draft is replaced.
func (s *Service) Resume(ctx context.Context, ownerID int64, draftID string) (View, error) {
	d, err := s.ownDraft(ctx, ownerID, draftID)
	if err != nil {
		return View{}, err
	}
	st, err := s.engine.FromDraft(d)
	if err != nil {
		return View{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if old, ok := s.sessions[d.ID]; ok {
		old.mu.Lock()
		busy := old.busy
		old.mu.Unlock()
		if busy {
			return View{}, ErrOperationInFlight
		}
	}
	sess := &session{ownerID: ownerID, saved: true, state: st}
	s.sessions[d.ID] = sess
	return s.view(d.ID, sess), nil
}

func (s *Service) ListDrafts(ctx context.Context, ownerID int64) ([]draft.Summary, error) {
	drafts, err := s.drafts.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]draft.Summary, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, d.Summary())
	}
	return out, nil
}

// DeleteDraft discards a draft. An open session for it stays open.
func (s *Service) DeleteDraft(ctx context.Context, ownerID int64, draftID string) error {
	if _, err := s.ownDraft(ctx, ownerID, draftID); err != nil {
		return err
	}
	if err := s.drafts.Delete(ctx, draftID); err != nil {
		return err
	}

	s.mu.RLock()
	sess, ok := s.sessions[draftID]
	s.mu.RUnlock()
	if ok {
		sess.mu.Lock()
		sess.saved = false
		sess.mu.Unlock()
	}
	return nil
}

func (s *Service) ownDraft(ctx context.Context, ownerID int64, id string) (*draft.Draft, error) {
	d, err := s.drafts.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return d, nil
}

// apply runs fn on the session state and keeps the result only on success.
func (s *Service) apply(ownerID int64, id string, fn func(State) (State, error)) (View, error) {
	sess, err := s.session(ownerID, id)
	if err != nil {
		return View{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if sess.busy {
		return View{}, ErrOperationInFlight
	}
	next, err := fn(sess.state)
	if err != nil {
		return View{}, err
	}
	sess.state = next
	return s.view(id, sess), nil
}

func (s *Service) session(ownerID int64, id string) (*session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || sess.ownerID != ownerID {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (s *Service) drop(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// view must be called with sess.mu held.
func (s *Service) view(id string, sess *session) View {
	st := sess.state
	key := s.engine.CurrentStep(st)
	def, _ := Definition(key)

	answers := make(map[flow.StepKey]Answer, len(st.Answers))
	for k, a := range st.Answers {
		answers[k] = a
	}
	steps := make([]flow.StepKey, len(st.Flow.Steps))
	copy(steps, st.Flow.Steps)

	return View{
		ID:          id,
		Category:    st.Category,
		Pricing:     st.Flow.Pricing,
		Steps:       steps,
		Index:       st.Index,
		CurrentStep: key,
		StepLabel:   key.Label(),
		Inputs:      def.Inputs,
		Progress:    s.engine.Progress(st),
		CanAdvance:  s.engine.CanAdvance(st),
		Answers:     answers,
		DraftSaved:  sess.saved,
	}
}
