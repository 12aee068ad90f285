package prefs

import (
	"fmt"
	"log"
	"sync"

	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/models"
	"github.com/terraincognita07/nutritrack/internal/stream"
)

// Cached field names, concatenated with the user id to form storage keys.
const (
	FieldTotalScore = "total_score"
	FieldPersona    = "persona"
	FieldMealTime   = "meal_time"
	FieldSleepTime  = "sleep_time"
	FieldWakeTime   = "wake_time"
)

// Cache keeps the per-user last-known display strings in the preference
// store current by following the entity change streams. Stop tears the
// subscription down; the cache goroutine lives exactly as long as the
// process-level lifecycle that started it.
type Cache struct {
	store        *Store
	repositories *db.Repositories
	subscription *stream.Subscription
	done         sync.WaitGroup
}

func StartCache(store *Store, repositories *db.Repositories, broker *stream.Broker) *Cache {
	cache := &Cache{
		store:        store,
		repositories: repositories,
		subscription: broker.Subscribe(64),
	}
	cache.done.Add(1)
	go cache.run()
	return cache
}

func (cache *Cache) Stop() {
	cache.subscription.Unsubscribe()
	cache.done.Wait()
}

func (cache *Cache) run() {
	defer cache.done.Done()
	for change := range cache.subscription.C {
		if change.UserID == "" {
			continue
		}
		if err := cache.refresh(change); err != nil {
			log.Printf("preference cache refresh (%s/%s): %v", change.Entity, change.UserID, err)
		}
	}
}

func (cache *Cache) refresh(change stream.Change) error {
	switch change.Entity {
	case stream.EntityScore:
		return cache.refreshTotalScore(change.UserID)
	case stream.EntityUser:
		return cache.refreshPersona(change.UserID)
	case stream.EntityTimePreference:
		return cache.refreshTimes(change.UserID)
	default:
		return nil
	}
}

func (cache *Cache) refreshTotalScore(userID string) error {
	score, err := cache.repositories.Scores.FindByUserAndType(userID, models.TotalScoreTypeID)
	if err != nil {
		return err
	}
	if score == nil {
		return nil
	}
	return cache.store.SetUserField(userID, FieldTotalScore, fmt.Sprintf("%.2f", score.Value))
}

func (cache *Cache) refreshPersona(userID string) error {
	user, err := cache.repositories.Users.FindByID(userID)
	if err != nil || user == nil || user.PersonaID == nil {
		return err
	}
	persona, err := cache.repositories.Catalogs.FindPersona(*user.PersonaID)
	if err != nil || persona == nil {
		return err
	}
	return cache.store.SetUserField(userID, FieldPersona, persona.Name)
}

func (cache *Cache) refreshTimes(userID string) error {
	preference, err := cache.repositories.TimePreferences.FindByUser(userID)
	if err != nil || preference == nil {
		return err
	}
	fields := map[string]*string{
		FieldMealTime:  preference.BiggestMealTime,
		FieldSleepTime: preference.SleepTime,
		FieldWakeTime:  preference.WakeTime,
	}
	for field, value := range fields {
		if value == nil {
			continue
		}
		if err := cache.store.SetUserField(userID, field, *value); err != nil {
			return err
		}
	}
	return nil
}
