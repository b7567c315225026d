package services

import (
	"fmt"

	"github.com/MyLifeUa/rest-api/config"
	"github.com/MyLifeUa/rest-api/models"
)

// AssignDoctor links a patient to the requesting doctor. The "patient
// has no doctor yet" precondition is enforced as an atomic conditional
// update so two concurrent requests cannot both win.
func AssignDoctor(doctorEmail, clientEmail string) error {
	doctor, err := findDoctor(doctorEmail)
	if err != nil {
		return err
	}
	client, err := findClient(clientEmail)
	if err != nil {
		return err
	}

	result := config.DB.Model(&models.Client{}).
		Where("id = ? AND doctor_id IS NULL", client.ID).
		Update("doctor_id", doctor.ID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client %s already has an assigned doctor: %w", clientEmail, models.ErrValidation)
	}
	return nil
}

// ClearDoctor removes the association; only the assigned doctor may do
// it, which the conditional update enforces as well.
func ClearDoctor(doctorEmail, clientEmail string) error {
	doctor, err := findDoctor(doctorEmail)
	if err != nil {
		return err
	}
	client, err := findClient(clientEmail)
	if err != nil {
		return err
	}

	result := config.DB.Model(&models.Client{}).
		Where("id = ? AND doctor_id = ?", client.ID, doctor.ID).
		Update("doctor_id", nil)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("client %s is not a patient of %s: %w", clientEmail, doctorEmail, models.ErrValidation)
	}
	return nil
}

func ListPatients(doctorEmail string) ([]ClientView, error) {
	doctor, err := findDoctor(doctorEmail)
	if err != nil {
		return nil, err
	}

	var clients []models.Client
	if err := config.DB.
		Preload("User").
		Where("doctor_id = ?", doctor.ID).
		Find(&clients).Error; err != nil {
		return nil, err
	}

	views := make([]ClientView, 0, len(clients))
	for i := range clients {
		views = append(views, clientView(&clients[i]))
	}
	return views, nil
}

func ListHospitalDoctors(hospital string) ([]DoctorView, error) {
	var doctors []models.Doctor
	if err := config.DB.
		Preload("User").
		Where("hospital = ?", hospital).
		Find(&doctors).Error; err != nil {
		return nil, err
	}

	views := make([]DoctorView, 0, len(doctors))
	for i := range doctors {
		views = append(views, doctorView(&doctors[i]))
	}
	return views, nil
}
