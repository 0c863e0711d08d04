// File: services/delivery/service_test.go
package delivery

import (
	"context"
	"encoding/json"
	"testing"

	"gorm.io/gorm"

	"entrega/models"
)

// memPreferenceRepo is an in-memory stand-in for the Postgres repository.
type memPreferenceRepo struct {
	rows    map[string]*models.DeliveryPreference
	upserts int
	failGet error
}

func newMemPreferenceRepo() *memPreferenceRepo {
	return &memPreferenceRepo{rows: make(map[string]*models.DeliveryPreference)}
}

func (r *memPreferenceRepo) GetByOwner(_ context.Context, ownerID string) (*models.DeliveryPreference, error) {
	if r.failGet != nil {
		return nil, r.failGet
	}
	pref, ok := r.rows[ownerID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return pref, nil
}

func (r *memPreferenceRepo) Upsert(_ context.Context, pref *models.DeliveryPreference) error {
	r.upserts++
	r.rows[pref.OwnerID] = pref
	return nil
}

func storedAvailability(t *testing.T, repo *memPreferenceRepo, ownerID string) models.WeeklyAvailability {
	t.Helper()
	pref, ok := repo.rows[ownerID]
	if !ok {
		t.Fatal("no row persisted")
	}
	var av models.WeeklyAvailability
	if err := json.Unmarshal(pref.Availability, &av); err != nil {
		t.Fatalf("stored blob does not parse: %v", err)
	}
	return av
}

func TestGetPreferences_MissingRowYieldsDefault(t *testing.T) {
	svc := &DefaultPreferenceService{Repo: newMemPreferenceRepo()}

	av, err := svc.GetPreferences(context.Background(), "sale-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(av.Days) != 7 || av.Priority != models.PriorityNormal {
		t.Errorf("expected the default week, got %+v", av)
	}
}

func TestGetPreferences_NormalizesStoredBlob(t *testing.T) {
	repo := newMemPreferenceRepo()
	raw, _ := json.Marshal(models.WeeklyAvailability{
		Days: []models.DayAvailability{
			{Day: models.Monday, Enabled: true, TimeSlots: []models.TimeSlot{
				{Period: models.PeriodCustom, CustomStart: "18:00", CustomEnd: "08:00"},
			}},
		},
		Priority: "nonsense",
	})
	repo.rows["sale-1"] = &models.DeliveryPreference{ID: "p1", OwnerID: "sale-1", Availability: raw}
	svc := &DefaultPreferenceService{Repo: repo}

	av, err := svc.GetPreferences(context.Background(), "sale-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(av.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(av.Days))
	}
	slot := av.Days[0].TimeSlots[0]
	if slot.CustomStart != "08:00" || slot.CustomEnd != "18:00" {
		t.Errorf("stored reversed range should come back swapped, got %s-%s", slot.CustomStart, slot.CustomEnd)
	}
	if av.Priority != models.PriorityNormal {
		t.Errorf("invalid stored priority should fall back to normal, got %s", av.Priority)
	}
}

func TestGetPreferences_CorruptBlobFallsBack(t *testing.T) {
	repo := newMemPreferenceRepo()
	repo.rows["sale-1"] = &models.DeliveryPreference{ID: "p1", OwnerID: "sale-1", Availability: []byte("{broken")}
	svc := &DefaultPreferenceService{Repo: repo}

	av, err := svc.GetPreferences(context.Background(), "sale-1")
	if err != nil {
		t.Fatalf("corrupt blob must not surface an error: %v", err)
	}
	if len(av.Days) != 7 || av.Priority != models.PriorityNormal {
		t.Errorf("expected the default week, got %+v", av)
	}
}

func TestToggleDay_PersistsNormalizedState(t *testing.T) {
	repo := newMemPreferenceRepo()
	svc := &DefaultPreferenceService{Repo: repo}

	av, err := svc.ToggleDay(context.Background(), "sale-1", models.Friday, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	friday := av.Days[4]
	if !friday.Enabled || len(friday.TimeSlots) != 1 || friday.TimeSlots[0].Period != models.PeriodMorning {
		t.Errorf("expected friday seeded with one morning slot, got %+v", friday)
	}
	if repo.upserts != 1 {
		t.Errorf("expected one upsert, got %d", repo.upserts)
	}

	stored := storedAvailability(t, repo, "sale-1")
	if len(stored.Days) != 7 || !stored.Days[4].Enabled {
		t.Errorf("persisted state is not canonical: %+v", stored)
	}
}

func TestReplaceAvailability_NormalizesInput(t *testing.T) {
	repo := newMemPreferenceRepo()
	svc := &DefaultPreferenceService{Repo: repo}

	in := &models.WeeklyAvailability{
		Days: []models.DayAvailability{
			{Day: models.Sunday, Enabled: false, TimeSlots: []models.TimeSlot{{Period: models.PeriodEvening}}},
		},
		Priority: models.PriorityUrgent,
		Notes:    "somente de manhã",
	}
	av, err := svc.ReplaceAvailability(context.Background(), "sale-1", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(av.Days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(av.Days))
	}
	sunday := av.Days[6]
	if sunday.Enabled || len(sunday.TimeSlots) != 0 {
		t.Errorf("disabled sunday kept slots: %+v", sunday)
	}
	if av.Priority != models.PriorityUrgent || av.Notes != "somente de manhã" {
		t.Errorf("priority/notes not carried: %+v", av)
	}
}

func TestEditsComposeAcrossCalls(t *testing.T) {
	repo := newMemPreferenceRepo()
	svc := &DefaultPreferenceService{Repo: repo}
	ctx := context.Background()

	if _, err := svc.ToggleDay(ctx, "sale-1", models.Monday, true); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.AddSlot(ctx, "sale-1", models.Monday); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SetPriority(ctx, "sale-1", models.PriorityHigh); err != nil {
		t.Fatal(err)
	}
	av, err := svc.SetNotes(ctx, "sale-1", "ligar antes")
	if err != nil {
		t.Fatal(err)
	}

	monday := av.Days[0]
	if len(monday.TimeSlots) != 2 {
		t.Errorf("expected 2 slots on monday, got %d", len(monday.TimeSlots))
	}
	if av.Priority != models.PriorityHigh || av.Notes != "ligar antes" {
		t.Errorf("edits lost across calls: %+v", av)
	}
}

func TestRemoveSlot_OutOfBoundsStillPersistsCanonicalState(t *testing.T) {
	repo := newMemPreferenceRepo()
	svc := &DefaultPreferenceService{Repo: repo}
	ctx := context.Background()

	if _, err := svc.ToggleDay(ctx, "sale-1", models.Monday, true); err != nil {
		t.Fatal(err)
	}
	av, err := svc.RemoveSlot(ctx, "sale-1", models.Monday, 9)
	if err != nil {
		t.Fatalf("out-of-bounds remove must not fail: %v", err)
	}
	if len(av.Days[0].TimeSlots) != 1 {
		t.Errorf("slot count changed on out-of-bounds remove: %+v", av.Days[0])
	}
}

func TestApply_RepoErrorPropagates(t *testing.T) {
	repo := newMemPreferenceRepo()
	repo.failGet = context.DeadlineExceeded
	svc := &DefaultPreferenceService{Repo: repo}

	if _, err := svc.SetNotes(context.Background(), "sale-1", "x"); err == nil {
		t.Error("expected the repository error to propagate")
	}
	if _, err := svc.GetPreferences(context.Background(), "sale-1"); err == nil {
		t.Error("expected the repository error to propagate")
	}
}

func TestScheduleReminder_NoWindow(t *testing.T) {
	svc := &DefaultPreferenceService{Repo: newMemPreferenceRepo()}

	_, err := svc.ScheduleReminder(context.Background(), "sale-1", "Entrega", "Sua entrega chega hoje")
	if err != ErrNoWindow {
		t.Errorf("expected ErrNoWindow for an empty week, got %v", err)
	}
}
