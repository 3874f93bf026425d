package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/Dosada05/handball-club-system/models"
	"github.com/Dosada05/handball-club-system/repositories"
)

type fakeMatchRepository struct {
	mu      sync.Mutex
	matches map[int]*models.Match
}

func newFakeMatchRepository(matches ...*models.Match) *fakeMatchRepository {
	repo := &fakeMatchRepository{matches: make(map[int]*models.Match)}
	for _, m := range matches {
		copied := *m
		repo.matches[m.ID] = &copied
	}
	return repo
}

func (r *fakeMatchRepository) Create(_ context.Context, match *models.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *match
	r.matches[match.ID] = &copied
	return nil
}

func (r *fakeMatchRepository) GetByID(_ context.Context, id int) (*models.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return nil, repositories.ErrMatchNotFound
	}
	copied := *match
	return &copied, nil
}

func (r *fakeMatchRepository) ListBySeason(_ context.Context, _ int) ([]*models.Match, error) {
	return nil, nil
}

func (r *fakeMatchRepository) ListByTeamBetween(_ context.Context, _ int, _, _ string) ([]*models.Match, error) {
	return nil, nil
}

func (r *fakeMatchRepository) UpdateScore(_ context.Context, id int, homeScore, awayScore int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	match.HomeScore = homeScore
	match.AwayScore = awayScore
	return nil
}

func (r *fakeMatchRepository) UpdateLiveClock(_ context.Context, id int, firstStart, firstEnd, secondStart, secondEnd *int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	match.RealTimeFirstHalfStart = firstStart
	match.RealTimeFirstHalfEnd = firstEnd
	match.RealTimeSecondHalfStart = secondStart
	match.RealTimeSecondHalfEnd = secondEnd
	return nil
}

func (r *fakeMatchRepository) UpdateVideoCalibration(_ context.Context, id int, firstStart, secondStart *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	match.FirstHalfVideoStart = firstStart
	match.SecondHalfVideoStart = secondStart
	return nil
}

func (r *fakeMatchRepository) UpdateLocks(_ context.Context, id int, homeLocked, awayLocked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	match.HomeEventsLocked = homeLocked
	match.AwayEventsLocked = awayLocked
	return nil
}

func (r *fakeMatchRepository) SetFinished(_ context.Context, id int, finished bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		return repositories.ErrMatchNotFound
	}
	match.IsFinished = finished
	return nil
}

func (r *fakeMatchRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.matches[id]; !ok {
		return repositories.ErrMatchNotFound
	}
	delete(r.matches, id)
	return nil
}

func (r *fakeMatchRepository) score(t *testing.T, id int) (int, int) {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	match, ok := r.matches[id]
	if !ok {
		t.Fatalf("match %d missing from repository", id)
	}
	return match.HomeScore, match.AwayScore
}

type fakeGameEventRepository struct {
	mu     sync.Mutex
	nextID int
	events map[int]*models.GameEvent
}

func newFakeGameEventRepository() *fakeGameEventRepository {
	return &fakeGameEventRepository{nextID: 1, events: make(map[int]*models.GameEvent)}
}

func (r *fakeGameEventRepository) Create(_ context.Context, event *models.GameEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	event.ID = r.nextID
	r.nextID++
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeGameEventRepository) GetByID(_ context.Context, id int) (*models.GameEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	event, ok := r.events[id]
	if !ok {
		return nil, repositories.ErrGameEventNotFound
	}
	copied := *event
	return &copied, nil
}

func (r *fakeGameEventRepository) ListByMatch(_ context.Context, matchID int) ([]*models.GameEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var events []*models.GameEvent
	for _, event := range r.events {
		if event.MatchID == matchID {
			copied := *event
			events = append(events, &copied)
		}
	}
	return events, nil
}

func (r *fakeGameEventRepository) Update(_ context.Context, event *models.GameEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[event.ID]; !ok {
		return repositories.ErrGameEventNotFound
	}
	copied := *event
	r.events[event.ID] = &copied
	return nil
}

func (r *fakeGameEventRepository) Delete(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.events[id]; !ok {
		return repositories.ErrGameEventNotFound
	}
	delete(r.events, id)
	return nil
}

func (r *fakeGameEventRepository) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func liveMatch() *models.Match {
	return &models.Match{
		ID:                     1,
		SeasonID:               1,
		HomeTeamID:             10,
		AwayTeamID:             20,
		RealTimeFirstHalfStart: int64Ptr(1_000_000),
	}
}

func newTestGameEventService(matches ...*models.Match) (GameEventService, *fakeMatchRepository, *fakeGameEventRepository) {
	matchRepo := newFakeMatchRepository(matches...)
	eventRepo := newFakeGameEventRepository()
	svc := NewGameEventService(eventRepo, matchRepo, NewMatchLocker(), nil)
	return svc, matchRepo, eventRepo
}

func goalInput(teamID, timestamp int) CreateGameEventInput {
	return CreateGameEventInput{
		MatchID:   1,
		TeamID:    teamID,
		Timestamp: timestamp,
		Type:      models.GameEventShot,
		Subtype:   strPtr(models.ShotSubtypeGoal),
		Distance:  strPtr(models.DistanceSixMeters),
		Position:  strPtr(models.PositionLeftWing),
	}
}

func TestCreateGoalIncrementsScoreAndDerivesZone(t *testing.T) {
	svc, matchRepo, _ := newTestGameEventService(liveMatch())

	event, err := svc.Create(context.Background(), goalInput(10, 120))
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if event.ID == 0 {
		t.Fatal("expected repository to assign an id")
	}
	if event.Zone == nil || *event.Zone != "6m-LW" {
		t.Fatalf("expected derived zone 6m-LW, got %v", event.Zone)
	}

	home, away := matchRepo.score(t, 1)
	if home != 1 || away != 0 {
		t.Fatalf("expected score 1:0, got %d:%d", home, away)
	}
}

func TestCreateNonGoalKeepsScore(t *testing.T) {
	svc, matchRepo, eventRepo := newTestGameEventService(liveMatch())

	input := goalInput(20, 30)
	input.Subtype = strPtr(models.ShotSubtypeSave)
	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("create save: %v", err)
	}

	turnover := CreateGameEventInput{
		MatchID:   1,
		TeamID:    20,
		Timestamp: 45,
		Type:      models.GameEventTurnover,
		Subtype:   strPtr(models.TurnoverSubtypeSteps),
	}
	if _, err := svc.Create(context.Background(), turnover); err != nil {
		t.Fatalf("create turnover: %v", err)
	}

	home, away := matchRepo.score(t, 1)
	if home != 0 || away != 0 {
		t.Fatalf("expected score untouched at 0:0, got %d:%d", home, away)
	}
	if eventRepo.count() != 2 {
		t.Fatalf("expected both events recorded, got %d", eventRepo.count())
	}
}

func TestCreateRejectedWhenSideLocked(t *testing.T) {
	match := liveMatch()
	match.HomeEventsLocked = true
	svc, matchRepo, eventRepo := newTestGameEventService(match)

	_, err := svc.Create(context.Background(), goalInput(10, 60))
	if !errors.Is(err, ErrTeamEventsLocked) {
		t.Fatalf("expected ErrTeamEventsLocked, got %v", err)
	}
	if eventRepo.count() != 0 {
		t.Fatal("rejected event must not be persisted")
	}
	home, away := matchRepo.score(t, 1)
	if home != 0 || away != 0 {
		t.Fatalf("rejected event must not touch the score, got %d:%d", home, away)
	}

	// Вторая сторона не заблокирована и продолжает писать.
	if _, err := svc.Create(context.Background(), goalInput(20, 61)); err != nil {
		t.Fatalf("away side must stay open: %v", err)
	}
}

func TestCreateRejectedBeforeMatchStart(t *testing.T) {
	svc, _, eventRepo := newTestGameEventService(&models.Match{ID: 1, HomeTeamID: 10, AwayTeamID: 20})

	_, err := svc.Create(context.Background(), goalInput(10, 0))
	if !errors.Is(err, ErrMatchNotStarted) {
		t.Fatalf("expected ErrMatchNotStarted, got %v", err)
	}
	if eventRepo.count() != 0 {
		t.Fatal("rejected event must not be persisted")
	}
}

func TestCreateSecondHalfGating(t *testing.T) {
	match := liveMatch()
	match.RealTimeFirstHalfEnd = int64Ptr(*match.RealTimeFirstHalfStart + 1_800_000)
	svc, matchRepo, _ := newTestGameEventService(match)

	_, err := svc.Create(context.Background(), goalInput(10, 1950))
	if !errors.Is(err, ErrSecondHalfNotStarted) {
		t.Fatalf("expected ErrSecondHalfNotStarted, got %v", err)
	}

	secondStart := *match.RealTimeFirstHalfStart + 2_100_000
	if err := matchRepo.UpdateLiveClock(context.Background(), 1,
		match.RealTimeFirstHalfStart, match.RealTimeFirstHalfEnd, &secondStart, nil); err != nil {
		t.Fatalf("mark second half: %v", err)
	}

	if _, err := svc.Create(context.Background(), goalInput(10, 1950)); err != nil {
		t.Fatalf("event must pass once second half has started: %v", err)
	}
}

func TestCreateOnFinishedMatchKeepsScore(t *testing.T) {
	match := liveMatch()
	match.IsFinished = true
	match.HomeScore = 33
	match.AwayScore = 26
	svc, matchRepo, eventRepo := newTestGameEventService(match)

	if _, err := svc.Create(context.Background(), goalInput(10, 3400)); err != nil {
		t.Fatalf("finished match still records events: %v", err)
	}
	if eventRepo.count() != 1 {
		t.Fatalf("expected one recorded event, got %d", eventRepo.count())
	}
	home, away := matchRepo.score(t, 1)
	if home != 33 || away != 26 {
		t.Fatalf("final score must stay 33:26, got %d:%d", home, away)
	}
}

func TestCreateValidatesInput(t *testing.T) {
	svc, _, _ := newTestGameEventService(liveMatch())
	ctx := context.Background()

	badTimestamp := goalInput(10, 120)
	badTimestamp.Timestamp = -1
	if _, err := svc.Create(ctx, badTimestamp); !errors.Is(err, ErrEventTimestampInvalid) {
		t.Fatalf("expected ErrEventTimestampInvalid, got %v", err)
	}

	badType := goalInput(10, 120)
	badType.Type = "Penalty"
	if _, err := svc.Create(ctx, badType); !errors.Is(err, ErrEventTypeInvalid) {
		t.Fatalf("expected ErrEventTypeInvalid, got %v", err)
	}

	badSubtype := goalInput(10, 120)
	badSubtype.Subtype = strPtr(models.TurnoverSubtypeSteal)
	if _, err := svc.Create(ctx, badSubtype); !errors.Is(err, ErrEventSubtypeInvalid) {
		t.Fatalf("expected ErrEventSubtypeInvalid, got %v", err)
	}

	foreignTeam := goalInput(99, 120)
	if _, err := svc.Create(ctx, foreignTeam); !errors.Is(err, ErrEventTeamInvalid) {
		t.Fatalf("expected ErrEventTeamInvalid, got %v", err)
	}

	missingMatch := goalInput(10, 120)
	missingMatch.MatchID = 777
	if _, err := svc.Create(ctx, missingMatch); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}
}

func TestDeleteGoalRevertsScore(t *testing.T) {
	svc, matchRepo, eventRepo := newTestGameEventService(liveMatch())
	ctx := context.Background()

	// Создание и удаление гола N раз возвращает счёт к исходному.
	for i := 0; i < 5; i++ {
		event, err := svc.Create(ctx, goalInput(20, 100+i))
		if err != nil {
			t.Fatalf("create goal %d: %v", i, err)
		}
		if err := svc.Delete(ctx, event.ID); err != nil {
			t.Fatalf("delete goal %d: %v", i, err)
		}
	}

	home, away := matchRepo.score(t, 1)
	if home != 0 || away != 0 {
		t.Fatalf("expected score back at 0:0, got %d:%d", home, away)
	}
	if eventRepo.count() != 0 {
		t.Fatalf("expected no events left, got %d", eventRepo.count())
	}
}

func TestDeleteOnFinishedMatchKeepsScore(t *testing.T) {
	svc, matchRepo, _ := newTestGameEventService(liveMatch())
	ctx := context.Background()

	event, err := svc.Create(ctx, goalInput(10, 500))
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if err := matchRepo.SetFinished(ctx, 1, true); err != nil {
		t.Fatalf("finish match: %v", err)
	}
	if err := svc.Delete(ctx, event.ID); err != nil {
		t.Fatalf("delete event: %v", err)
	}

	home, away := matchRepo.score(t, 1)
	if home != 1 || away != 0 {
		t.Fatalf("score is frozen after the final whistle, got %d:%d", home, away)
	}
}

func TestDeleteNonGoalKeepsScore(t *testing.T) {
	svc, matchRepo, _ := newTestGameEventService(liveMatch())
	ctx := context.Background()

	input := goalInput(10, 90)
	input.Subtype = strPtr(models.ShotSubtypeMiss)
	event, err := svc.Create(ctx, input)
	if err != nil {
		t.Fatalf("create miss: %v", err)
	}
	if err := svc.Delete(ctx, event.ID); err != nil {
		t.Fatalf("delete miss: %v", err)
	}

	home, away := matchRepo.score(t, 1)
	if home != 0 || away != 0 {
		t.Fatalf("expected 0:0, got %d:%d", home, away)
	}
}

// Репозиторий, задерживающий первые два чтения события до тех пор, пока
// не придут оба. Так оба удаляющих успевают загрузить событие до того,
// как кто-то из них возьмёт замок матча.
type barrierGameEventRepository struct {
	*fakeGameEventRepository
	mu      sync.Mutex
	arrived int
	release chan struct{}
}

func (r *barrierGameEventRepository) GetByID(ctx context.Context, id int) (*models.GameEvent, error) {
	r.mu.Lock()
	r.arrived++
	if r.arrived == 2 {
		close(r.release)
	}
	r.mu.Unlock()
	<-r.release
	return r.fakeGameEventRepository.GetByID(ctx, id)
}

func TestConcurrentDeleteReversesScoreOnce(t *testing.T) {
	matchRepo := newFakeMatchRepository(liveMatch())
	eventRepo := newFakeGameEventRepository()
	ctx := context.Background()

	goalA := &models.GameEvent{MatchID: 1, TeamID: 10, Type: models.GameEventShot, Subtype: strPtr(models.ShotSubtypeGoal)}
	goalB := &models.GameEvent{MatchID: 1, TeamID: 10, Type: models.GameEventShot, Subtype: strPtr(models.ShotSubtypeGoal)}
	for _, goal := range []*models.GameEvent{goalA, goalB} {
		if err := eventRepo.Create(ctx, goal); err != nil {
			t.Fatalf("seed goal: %v", err)
		}
	}
	if err := matchRepo.UpdateScore(ctx, 1, 2, 0); err != nil {
		t.Fatalf("seed score: %v", err)
	}

	barrier := &barrierGameEventRepository{
		fakeGameEventRepository: eventRepo,
		release:                 make(chan struct{}),
	}
	svc := NewGameEventService(barrier, matchRepo, NewMatchLocker(), nil)

	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			results <- svc.Delete(context.Background(), goalA.ID)
		}()
	}

	var succeeded, notFound int
	for i := 0; i < 2; i++ {
		switch err := <-results; {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrGameEventNotFound):
			notFound++
		default:
			t.Fatalf("unexpected delete error: %v", err)
		}
	}
	if succeeded != 1 || notFound != 1 {
		t.Fatalf("expected one success and one not-found, got ok=%d notFound=%d", succeeded, notFound)
	}

	home, away := matchRepo.score(t, 1)
	if home != 1 || away != 0 {
		t.Fatalf("one deleted goal must reverse the score once, got %d:%d", home, away)
	}
	if _, err := eventRepo.GetByID(ctx, goalB.ID); err != nil {
		t.Fatalf("untouched goal must survive: %v", err)
	}
}

func TestDeleteTwiceReturnsNotFound(t *testing.T) {
	svc, matchRepo, _ := newTestGameEventService(liveMatch())
	ctx := context.Background()

	event, err := svc.Create(ctx, goalInput(10, 100))
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if err := svc.Delete(ctx, event.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := svc.Delete(ctx, event.ID); !errors.Is(err, ErrGameEventNotFound) {
		t.Fatalf("expected ErrGameEventNotFound, got %v", err)
	}

	home, away := matchRepo.score(t, 1)
	if home != 0 || away != 0 {
		t.Fatalf("repeated delete must not reverse the score again, got %d:%d", home, away)
	}
}

func TestUpdateRejectedWhenSideLocked(t *testing.T) {
	svc, matchRepo, _ := newTestGameEventService(liveMatch())
	ctx := context.Background()

	homeEvent, err := svc.Create(ctx, goalInput(10, 100))
	if err != nil {
		t.Fatalf("create home goal: %v", err)
	}
	awayEvent, err := svc.Create(ctx, goalInput(20, 110))
	if err != nil {
		t.Fatalf("create away goal: %v", err)
	}

	if err := matchRepo.UpdateLocks(ctx, 1, true, false); err != nil {
		t.Fatalf("lock home side: %v", err)
	}

	_, err = svc.Update(ctx, homeEvent.ID, UpdateGameEventInput{GoalZone: strPtr("top-left")})
	if !errors.Is(err, ErrTeamEventsLocked) {
		t.Fatalf("expected ErrTeamEventsLocked, got %v", err)
	}

	// Незаблокированная сторона правится как обычно.
	if _, err := svc.Update(ctx, awayEvent.ID, UpdateGameEventInput{GoalZone: strPtr("top-right")}); err != nil {
		t.Fatalf("away event update: %v", err)
	}

	if err := matchRepo.UpdateLocks(ctx, 1, false, false); err != nil {
		t.Fatalf("unlock home side: %v", err)
	}
	if _, err := svc.Update(ctx, homeEvent.ID, UpdateGameEventInput{GoalZone: strPtr("top-left")}); err != nil {
		t.Fatalf("home event update after unlock: %v", err)
	}
}

func TestUpdateRecomputesZone(t *testing.T) {
	svc, _, _ := newTestGameEventService(liveMatch())
	ctx := context.Background()

	event, err := svc.Create(ctx, goalInput(10, 120))
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	// Меняется только дистанция, позиция берётся из события.
	updated, err := svc.Update(ctx, event.ID, UpdateGameEventInput{
		Distance: strPtr(models.DistanceNineMeters),
	})
	if err != nil {
		t.Fatalf("update distance: %v", err)
	}
	if updated.Zone == nil || *updated.Zone != "9m-LW" {
		t.Fatalf("expected zone 9m-LW, got %v", updated.Zone)
	}

	// Меняется только позиция, дистанция берётся из события.
	updated, err = svc.Update(ctx, event.ID, UpdateGameEventInput{
		Position: strPtr(models.PositionPivot),
	})
	if err != nil {
		t.Fatalf("update position: %v", err)
	}
	if updated.Zone == nil || *updated.Zone != "9m-PV" {
		t.Fatalf("expected zone 9m-PV, got %v", updated.Zone)
	}

	// Сброс дистанции обнуляет зону.
	updated, err = svc.Update(ctx, event.ID, UpdateGameEventInput{
		Distance: strPtr(""),
	})
	if err != nil {
		t.Fatalf("clear distance: %v", err)
	}
	if updated.Zone != nil {
		t.Fatalf("expected nil zone without distance, got %q", *updated.Zone)
	}
}

func TestUpdateDoesNotTouchScore(t *testing.T) {
	svc, matchRepo, _ := newTestGameEventService(liveMatch())
	ctx := context.Background()

	event, err := svc.Create(ctx, goalInput(10, 120))
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	if _, err := svc.Update(ctx, event.ID, UpdateGameEventInput{
		Subtype: strPtr(models.ShotSubtypeSave),
	}); err != nil {
		t.Fatalf("downgrade goal to save: %v", err)
	}

	home, away := matchRepo.score(t, 1)
	if home != 1 || away != 0 {
		t.Fatalf("update never corrects the score, got %d:%d", home, away)
	}
}

func TestUpdateValidatesMergedTypeSubtype(t *testing.T) {
	svc, _, _ := newTestGameEventService(liveMatch())
	ctx := context.Background()

	event, err := svc.Create(ctx, goalInput(10, 120))
	if err != nil {
		t.Fatalf("create goal: %v", err)
	}

	// Новый тип с унаследованным подтипом Goal недопустим.
	turnover := models.GameEventTurnover
	if _, err := svc.Update(ctx, event.ID, UpdateGameEventInput{Type: &turnover}); !errors.Is(err, ErrEventSubtypeInvalid) {
		t.Fatalf("expected ErrEventSubtypeInvalid, got %v", err)
	}

	if _, err := svc.Update(ctx, 777, UpdateGameEventInput{}); !errors.Is(err, ErrGameEventNotFound) {
		t.Fatalf("expected ErrGameEventNotFound, got %v", err)
	}
}

func TestListByMatch(t *testing.T) {
	svc, _, _ := newTestGameEventService(liveMatch())
	ctx := context.Background()

	if _, err := svc.ListByMatch(ctx, 777); !errors.Is(err, ErrMatchNotFound) {
		t.Fatalf("expected ErrMatchNotFound, got %v", err)
	}

	events, err := svc.ListByMatch(ctx, 1)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected empty list, got %d", len(events))
	}

	if _, err := svc.Create(ctx, goalInput(10, 120)); err != nil {
		t.Fatalf("create goal: %v", err)
	}
	events, err = svc.ListByMatch(ctx, 1)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected one event, got %d", len(events))
	}
}

func TestConcurrentGoalsAllCounted(t *testing.T) {
	svc, matchRepo, _ := newTestGameEventService(liveMatch())

	const homeGoals = 40
	const awayGoals = 25

	var wg sync.WaitGroup
	errs := make(chan error, homeGoals+awayGoals)

	for i := 0; i < homeGoals; i++ {
		wg.Add(1)
		go func(ts int) {
			defer wg.Done()
			if _, err := svc.Create(context.Background(), goalInput(10, ts)); err != nil {
				errs <- err
			}
		}(i)
	}
	for i := 0; i < awayGoals; i++ {
		wg.Add(1)
		go func(ts int) {
			defer wg.Done()
			if _, err := svc.Create(context.Background(), goalInput(20, ts)); err != nil {
				errs <- err
			}
		}(i)
	}

	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent create failed: %v", err)
	}

	home, away := matchRepo.score(t, 1)
	if home != homeGoals || away != awayGoals {
		t.Fatalf("lost score increments: expected %d:%d, got %d:%d", homeGoals, awayGoals, home, away)
	}
}
