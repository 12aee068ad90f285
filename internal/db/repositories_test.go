package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/stream"
	"gorm.io/gorm"
)

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := OpenSQLite(filepath.Join(t.TempDir(), "repo-test.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	return database
}

func seedCatalogRows(t *testing.T, database *gorm.DB) {
	t.Helper()
	for _, category := range models.DefaultFoodCategories() {
		if err := database.Create(&category).Error; err != nil {
			t.Fatalf("seed category: %v", err)
		}
	}
	for _, scoreType := range models.DefaultScoreTypes() {
		if err := database.Create(&scoreType).Error; err != nil {
			t.Fatalf("seed score type: %v", err)
		}
	}
	for _, persona := range models.DefaultPersonas() {
		if err := database.Create(&persona).Error; err != nil {
			t.Fatalf("seed persona: %v", err)
		}
	}
}

func createTestUser(t *testing.T, repos *Repositories, userID string, gender string) {
	t.Helper()
	user := models.User{ID: userID, Phone: "614000000" + userID, Gender: gender, CreatedAt: time.Now()}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user %s: %v", userID, err)
	}
}

func TestMigratedSchemaNullsPersonaReferenceOnDelete(t *testing.T) {
	database := openTestDatabase(t)

	if !database.Migrator().HasConstraint(&models.User{}, "Persona") {
		t.Fatal("expected users.persona_id to carry an ON DELETE SET NULL reference")
	}
}

func TestUserRepositoryFindByIDReturnsNilForUnknown(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database, nil)

	user, err := repos.Users.FindByID("nope")
	if err != nil {
		t.Fatalf("FindByID() unexpected error: %v", err)
	}
	if user != nil {
		t.Fatalf("expected nil for unknown id, got %+v", user)
	}
}

func TestUserRepositoryRegisterCredential(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database, nil)
	createTestUser(t, repos, "4", models.GenderMale)

	if err := repos.Users.RegisterCredential("4", "Alex", "hash-value"); err != nil {
		t.Fatalf("RegisterCredential() unexpected error: %v", err)
	}

	user, err := repos.Users.FindByID("4")
	if err != nil || user == nil {
		t.Fatalf("FindByID() = %v, %v", user, err)
	}
	if !user.Registered || user.Name == nil || *user.Name != "Alex" || user.PasswordHash == nil {
		t.Fatalf("unexpected registered user state: %+v", user)
	}
}

func TestUserRepositoryMutationsPublishChanges(t *testing.T) {
	database := openTestDatabase(t)
	broker := stream.NewBroker()
	subscription := broker.Subscribe(8)
	defer subscription.Unsubscribe()

	repos := NewRepositories(database, broker)
	createTestUser(t, repos, "4", models.GenderMale)

	select {
	case change := <-subscription.C:
		if change.Entity != stream.EntityUser || change.UserID != "4" {
			t.Fatalf("unexpected change %+v", change)
		}
	default:
		t.Fatal("expected a change event for the created user")
	}
}

func TestScoreRepositoryListByUserOrdersByScoreType(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database, nil)
	seedCatalogRows(t, database)
	createTestUser(t, repos, "4", models.GenderMale)

	for _, scoreTypeID := range []string{"water", "fruits", "sodium"} {
		score := models.UserScore{UserID: "4", ScoreTypeID: scoreTypeID, Value: 1}
		if err := repos.Scores.Upsert(&score); err != nil {
			t.Fatalf("upsert %s: %v", scoreTypeID, err)
		}
	}

	scores, err := repos.Scores.ListByUser("4")
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	for index := 1; index < len(scores); index++ {
		if scores[index-1].ScoreTypeID > scores[index].ScoreTypeID {
			t.Fatalf("scores not ordered: %s before %s", scores[index-1].ScoreTypeID, scores[index].ScoreTypeID)
		}
	}
	if scores[0].ScoreType.Name == "" {
		t.Fatal("expected score types preloaded")
	}
}

func TestScoreRepositoryUpsertOverwritesExistingRow(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database, nil)
	seedCatalogRows(t, database)
	createTestUser(t, repos, "4", models.GenderMale)

	first := models.UserScore{UserID: "4", ScoreTypeID: "fruits", Value: 2}
	if err := repos.Scores.Upsert(&first); err != nil {
		t.Fatalf("first Upsert(): %v", err)
	}
	second := models.UserScore{UserID: "4", ScoreTypeID: "fruits", Value: 7.5}
	if err := repos.Scores.Upsert(&second); err != nil {
		t.Fatalf("second Upsert(): %v", err)
	}

	score, err := repos.Scores.FindByUserAndType("4", "fruits")
	if err != nil || score == nil {
		t.Fatalf("FindByUserAndType() = %v, %v", score, err)
	}
	if score.Value != 7.5 {
		t.Fatalf("expected overwritten value 7.5, got %v", score.Value)
	}

	var count int64
	if err := database.Model(&models.UserScore{}).Where("user_id = ?", "4").Count(&count).Error; err != nil {
		t.Fatalf("count scores: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single row after upsert, got %d", count)
	}
}

func TestFoodPreferenceReplaceSelections(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database, nil)
	seedCatalogRows(t, database)
	createTestUser(t, repos, "4", models.GenderMale)

	for _, category := range models.DefaultFoodCategories() {
		preference := models.UserFoodPreference{UserID: "4", CategoryID: category.ID}
		if err := repos.FoodPreferences.Create(&preference); err != nil {
			t.Fatalf("create preference: %v", err)
		}
	}

	if err := repos.FoodPreferences.ReplaceSelections("4", []string{"fruits", "eggs"}); err != nil {
		t.Fatalf("ReplaceSelections() unexpected error: %v", err)
	}
	preferences, err := repos.FoodPreferences.ListByUser("4")
	if err != nil {
		t.Fatalf("ListByUser() unexpected error: %v", err)
	}

	checked := make(map[string]bool)
	for _, preference := range preferences {
		checked[preference.CategoryID] = preference.Checked
	}
	if !checked["fruits"] || !checked["eggs"] {
		t.Fatalf("expected fruits and eggs checked, got %v", checked)
	}
	if checked["grains"] {
		t.Fatal("expected unselected categories unchecked")
	}

	// A second save with a different selection unchecks the old one.
	if err := repos.FoodPreferences.ReplaceSelections("4", []string{"grains"}); err != nil {
		t.Fatalf("second ReplaceSelections(): %v", err)
	}
	preferences, _ = repos.FoodPreferences.ListByUser("4")
	for _, preference := range preferences {
		if preference.Checked != (preference.CategoryID == "grains") {
			t.Fatalf("unexpected state for %s: %v", preference.CategoryID, preference.Checked)
		}
	}
}

func TestTimePreferenceReplaceKeepsOneRowPerUser(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database, nil)
	createTestUser(t, repos, "4", models.GenderMale)

	wake, meal, sleep := "07:00", "12:00", "22:00"
	if err := repos.TimePreferences.Create(&models.UserTimePreference{UserID: "4"}); err != nil {
		t.Fatalf("create placeholder: %v", err)
	}
	if err := repos.TimePreferences.Replace(&models.UserTimePreference{
		UserID: "4", WakeTime: &wake, BiggestMealTime: &meal, SleepTime: &sleep,
	}); err != nil {
		t.Fatalf("Replace() unexpected error: %v", err)
	}

	var count int64
	if err := database.Model(&models.UserTimePreference{}).Where("user_id = ?", "4").Count(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected a single time row, got %d", count)
	}

	preference, err := repos.TimePreferences.FindByUser("4")
	if err != nil || preference == nil {
		t.Fatalf("FindByUser() = %v, %v", preference, err)
	}
	if preference.WakeTime == nil || *preference.WakeTime != "07:00" {
		t.Fatalf("unexpected wake time: %+v", preference)
	}
}

func TestChatRepositoryExchangeOrderingAndDeletes(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database, nil)
	createTestUser(t, repos, "4", models.GenderMale)

	userID := "4"
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for round := 0; round < 2; round++ {
		userMessage := &models.ChatMessage{
			Content: "question", FromUser: true, UserID: &userID,
			SessionID: "session-a", Timestamp: base.Add(time.Duration(round) * time.Minute),
		}
		reply := &models.ChatMessage{
			Content: "answer", FromUser: false, UserID: &userID,
			SessionID: "session-a", Timestamp: base.Add(time.Duration(round) * time.Minute),
		}
		if err := repos.ChatMessages.AppendExchange(userMessage, reply); err != nil {
			t.Fatalf("AppendExchange(): %v", err)
		}
	}

	messages, err := repos.ChatMessages.ListBySession("session-a")
	if err != nil {
		t.Fatalf("ListBySession() unexpected error: %v", err)
	}
	if len(messages) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(messages))
	}
	if !messages[0].FromUser || messages[1].FromUser {
		t.Fatal("expected user message before AI reply within an exchange")
	}

	if err := repos.ChatMessages.DeleteSession("session-a"); err != nil {
		t.Fatalf("DeleteSession(): %v", err)
	}
	messages, err = repos.ChatMessages.ListBySession("session-a")
	if err != nil {
		t.Fatalf("ListBySession() after delete: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected empty session after delete, got %d messages", len(messages))
	}
}

func TestDeleteWithRelatedDataRemovesDependents(t *testing.T) {
	database := openTestDatabase(t)
	repos := NewRepositories(database, nil)
	seedCatalogRows(t, database)
	createTestUser(t, repos, "4", models.GenderMale)

	score := models.UserScore{UserID: "4", ScoreTypeID: "fruits", Value: 3}
	if err := repos.Scores.Upsert(&score); err != nil {
		t.Fatalf("upsert score: %v", err)
	}
	if err := repos.TimePreferences.Create(&models.UserTimePreference{UserID: "4"}); err != nil {
		t.Fatalf("create time preference: %v", err)
	}

	if err := repos.Users.DeleteWithRelatedData("4"); err != nil {
		t.Fatalf("DeleteWithRelatedData(): %v", err)
	}

	remaining, err := repos.Scores.ListByUser("4")
	if err != nil {
		t.Fatalf("ListByUser() after delete: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected scores removed with user, got %d", len(remaining))
	}
	user, err := repos.Users.FindByID("4")
	if err != nil {
		t.Fatalf("FindByID() after delete: %v", err)
	}
	if user != nil {
		t.Fatal("expected user removed")
	}
}
