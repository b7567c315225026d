package services

import (
	"log"
	"time"

	"github.com/MyLifeUa/rest-api/models"

	"github.com/go-co-op/gocron"
	"gorm.io/gorm"
)

// Notifier delivers a reminder to one account. The transport behind it
// (push, mail, ...) is not this service's concern.
type Notifier interface {
	Notify(email, message string) error
}

// LogNotifier just writes reminders to the process log.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Notify(email, message string) error {
	log.Printf("reminder for %s: %s", email, message)
	return nil
}

// ReminderService nudges clients who have not logged any food today.
type ReminderService struct {
	db       *gorm.DB
	notifier Notifier
}

func NewReminderService(db *gorm.DB, notifier Notifier) *ReminderService {
	return &ReminderService{db: db, notifier: notifier}
}

// Start schedules the daily sweep.
func (s *ReminderService) Start() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(1).Day().At("20:00").Do(func() {
		if err := s.SendFoodLogReminders(); err != nil {
			log.Printf("food log reminder sweep failed: %v", err)
		}
	})

	scheduler.StartAsync()
	log.Println("food log reminder cron started")

	return scheduler
}

// SendFoodLogReminders reads meal-history presence per client for
// today and notifies the ones with nothing logged. Read-only.
func (s *ReminderService) SendFoodLogReminders() error {
	today := time.Now().Format("2006-01-02")

	var clients []models.Client
	if err := s.db.Preload("User").Find(&clients).Error; err != nil {
		return err
	}

	notified := 0
	for _, client := range clients {
		var count int64
		if err := s.db.Model(&models.MealHistory{}).
			Where("client_id = ? AND day = ?", client.ID, today).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := s.notifier.Notify(client.User.Email, "Do not forget to add your food logs!"); err != nil {
			log.Printf("failed to notify %s: %v", client.User.Email, err)
			continue
		}
		notified++
	}

	log.Printf("notified %d clients", notified)
	return nil
}
