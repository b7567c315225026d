package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/MyLifeUa/rest-api/config"
	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/utils"

	"gorm.io/gorm"
)

// Typed projections returned per role instead of loosely shaped maps.

type ClientView struct {
	Email         string  `json:"email"`
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	PhoneNumber   string  `json:"phone_number,omitempty"`
	Photo         string  `json:"photo,omitempty"`
	BirthDate     string  `json:"birth_date"`
	Age           int     `json:"age"`
	Sex           string  `json:"sex"`
	Height        float64 `json:"height"`
	CurrentWeight float64 `json:"current_weight"`
	WeightGoal    float64 `json:"weight_goal"`
	Doctor        string  `json:"doctor,omitempty"`
}

type DoctorView struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Photo       string `json:"photo,omitempty"`
	BirthDate   string `json:"birth_date"`
	Hospital    string `json:"hospital"`
}

type AdminView struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Hospital  string `json:"hospital"`
}

type NewAccountInput struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name" binding:"required"`
	PhoneNumber string `json:"phone_number"`
	Photo       string `json:"photo"`
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD
}

type NewClientInput struct {
	NewAccountInput
	Sex           string  `json:"sex" binding:"required,oneof=male female"`
	Height        float64 `json:"height" binding:"required,gt=0"`
	CurrentWeight float64 `json:"current_weight" binding:"required,gt=0"`
	WeightGoal    float64 `json:"weight_goal" binding:"required,gt=0"`
}

// ResolveRole derives the role from which profile row exists. Checked
// in a fixed order so the precedence is explicit rather than implied
// by lookup order elsewhere.
func ResolveRole(userID uint) (models.Role, error) {
	var count int64

	config.DB.Model(&models.Admin{}).Where("user_id = ?", userID).Count(&count)
	if count > 0 {
		return models.RoleAdmin, nil
	}

	config.DB.Model(&models.Doctor{}).Where("user_id = ?", userID).Count(&count)
	if count > 0 {
		return models.RoleDoctor, nil
	}

	config.DB.Model(&models.Client{}).Where("user_id = ?", userID).Count(&count)
	if count > 0 {
		return models.RoleClient, nil
	}

	return "", fmt.Errorf("user %d has no role: %w", userID, models.ErrNotFound)
}

func EmailTaken(email string) bool {
	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", email).Count(&count)
	return count > 0
}

func parseBirthDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	birthDate, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("birth_date must be YYYY-MM-DD: %w", models.ErrValidation)
	}
	if birthDate.After(time.Now()) {
		return time.Time{}, fmt.Errorf("birth_date is in the future: %w", models.ErrValidation)
	}
	return birthDate, nil
}

func newUser(input NewAccountInput) (*models.User, error) {
	birthDate, err := parseBirthDate(input.BirthDate)
	if err != nil {
		return nil, err
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		Email:       input.Email,
		Password:    hashed,
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		PhoneNumber: input.PhoneNumber,
		Photo:       input.Photo,
		BirthDate:   birthDate,
	}, nil
}

// RegisterClient creates the identity and the client profile in one
// transaction: either both rows land or neither does.
func RegisterClient(input NewClientInput) error {
	if EmailTaken(input.Email) {
		return fmt.Errorf("there is already a user with email %s: %w", input.Email, models.ErrDuplicateAccount)
	}

	user, err := newUser(input.NewAccountInput)
	if err != nil {
		return err
	}
	if user.BirthDate.IsZero() {
		return fmt.Errorf("birth_date is required: %w", models.ErrValidation)
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		client := &models.Client{
			UserID:        user.ID,
			Sex:           input.Sex,
			Height:        input.Height,
			CurrentWeight: input.CurrentWeight,
			WeightGoal:    input.WeightGoal,
		}
		return tx.Create(client).Error
	})
}

// RegisterDoctor is admin-only upstream; the doctor joins the creating
// admin's hospital.
func RegisterDoctor(input NewAccountInput, hospital string) error {
	if EmailTaken(input.Email) {
		return fmt.Errorf("there is already a user with email %s: %w", input.Email, models.ErrDuplicateAccount)
	}

	user, err := newUser(input)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Doctor{UserID: user.ID, Hospital: hospital}).Error
	})
}

func RegisterAdmin(input NewAccountInput, hospital string) error {
	if EmailTaken(input.Email) {
		return fmt.Errorf("there is already a user with email %s: %w", input.Email, models.ErrDuplicateAccount)
	}

	user, err := newUser(input)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&models.Admin{UserID: user.ID, Hospital: hospital}).Error
	})
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, models.ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

func findClient(email string) (*models.Client, error) {
	var client models.Client
	err := config.DB.
		Joins("JOIN users ON users.id = clients.user_id").
		Where("users.email = ?", email).
		Preload("User").
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client %s: %w", email, models.ErrNotFound)
		}
		return nil, err
	}
	return &client, nil
}

func findDoctor(email string) (*models.Doctor, error) {
	var doctor models.Doctor
	err := config.DB.
		Joins("JOIN users ON users.id = doctors.user_id").
		Where("users.email = ?", email).
		Preload("User").
		First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("doctor %s: %w", email, models.ErrNotFound)
		}
		return nil, err
	}
	return &doctor, nil
}

func findAdmin(email string) (*models.Admin, error) {
	var admin models.Admin
	err := config.DB.
		Joins("JOIN users ON users.id = admins.user_id").
		Where("users.email = ?", email).
		Preload("User").
		First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("admin %s: %w", email, models.ErrNotFound)
		}
		return nil, err
	}
	return &admin, nil
}

func clientView(client *models.Client) ClientView {
	view := ClientView{
		Email:         client.User.Email,
		FirstName:     client.User.FirstName,
		LastName:      client.User.LastName,
		PhoneNumber:   client.User.PhoneNumber,
		Photo:         client.User.Photo,
		Sex:           client.Sex,
		Height:        client.Height,
		CurrentWeight: client.CurrentWeight,
		WeightGoal:    client.WeightGoal,
	}
	if !client.User.BirthDate.IsZero() {
		view.BirthDate = client.User.BirthDate.Format("2006-01-02")
		view.Age = utils.CalculateAge(client.User.BirthDate, time.Now())
	}
	if client.DoctorID != nil {
		var doctor models.Doctor
		if err := config.DB.Preload("User").First(&doctor, *client.DoctorID).Error; err == nil {
			view.Doctor = doctor.User.Email
		}
	}
	return view
}

func doctorView(doctor *models.Doctor) DoctorView {
	view := DoctorView{
		Email:       doctor.User.Email,
		FirstName:   doctor.User.FirstName,
		LastName:    doctor.User.LastName,
		PhoneNumber: doctor.User.PhoneNumber,
		Photo:       doctor.User.Photo,
		Hospital:    doctor.Hospital,
	}
	if !doctor.User.BirthDate.IsZero() {
		view.BirthDate = doctor.User.BirthDate.Format("2006-01-02")
	}
	return view
}

func adminView(admin *models.Admin) AdminView {
	return AdminView{
		Email:     admin.User.Email,
		FirstName: admin.User.FirstName,
		LastName:  admin.User.LastName,
		Hospital:  admin.Hospital,
	}
}

func ClientIDByEmail(email string) (uint, error) {
	client, err := findClient(email)
	if err != nil {
		return 0, err
	}
	return client.ID, nil
}

func GetClient(email string) (*ClientView, error) {
	client, err := findClient(email)
	if err != nil {
		return nil, err
	}
	view := clientView(client)
	return &view, nil
}

func GetDoctor(email string) (*DoctorView, error) {
	doctor, err := findDoctor(email)
	if err != nil {
		return nil, err
	}
	view := doctorView(doctor)
	return &view, nil
}

func GetAdmin(email string) (*AdminView, error) {
	admin, err := findAdmin(email)
	if err != nil {
		return nil, err
	}
	view := adminView(admin)
	return &view, nil
}

type UpdateAccountInput struct {
	FirstName     string  `json:"first_name"`
	LastName      string  `json:"last_name"`
	PhoneNumber   string  `json:"phone_number"`
	Photo         string  `json:"photo"`
	BirthDate     string  `json:"birth_date"`
	Password      string  `json:"password"`
	Sex           string  `json:"sex"`
	Height        float64 `json:"height"`
	CurrentWeight float64 `json:"current_weight"`
	WeightGoal    float64 `json:"weight_goal"`
	Hospital      string  `json:"hospital"`
}

func applyUserUpdate(user *models.User, input UpdateAccountInput) error {
	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Photo != "" {
		user.Photo = input.Photo
	}
	if input.BirthDate != "" {
		birthDate, err := parseBirthDate(input.BirthDate)
		if err != nil {
			return err
		}
		user.BirthDate = birthDate
	}
	if input.Password != "" {
		hashed, err := utils.HashPassword(input.Password)
		if err != nil {
			return err
		}
		user.Password = hashed
	}
	return nil
}

func UpdateClient(email string, input UpdateAccountInput) error {
	client, err := findClient(email)
	if err != nil {
		return err
	}
	if err := applyUserUpdate(&client.User, input); err != nil {
		return err
	}
	if input.Sex != "" {
		if input.Sex != "male" && input.Sex != "female" {
			return fmt.Errorf("sex must be male or female: %w", models.ErrValidation)
		}
		client.Sex = input.Sex
	}
	if input.Height > 0 {
		client.Height = input.Height
	}
	if input.CurrentWeight > 0 {
		client.CurrentWeight = input.CurrentWeight
	}
	if input.WeightGoal > 0 {
		client.WeightGoal = input.WeightGoal
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&client.User).Error; err != nil {
			return err
		}
		return tx.Save(client).Error
	})
}

func UpdateDoctor(email string, input UpdateAccountInput) error {
	doctor, err := findDoctor(email)
	if err != nil {
		return err
	}
	if err := applyUserUpdate(&doctor.User, input); err != nil {
		return err
	}
	if input.Hospital != "" {
		doctor.Hospital = input.Hospital
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&doctor.User).Error; err != nil {
			return err
		}
		return tx.Save(doctor).Error
	})
}

func UpdateAdmin(email string, input UpdateAccountInput) error {
	admin, err := findAdmin(email)
	if err != nil {
		return err
	}
	if err := applyUserUpdate(&admin.User, input); err != nil {
		return err
	}
	if input.Hospital != "" {
		admin.Hospital = input.Hospital
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&admin.User).Error; err != nil {
			return err
		}
		return tx.Save(admin).Error
	})
}

// DeleteAccount removes the role row, its dependents and the identity
// in one transaction.
func DeleteAccount(email string) error {
	user, err := FindUserByEmail(email)
	if err != nil {
		return err
	}

	role, err := ResolveRole(user.ID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		switch role {
		case models.RoleClient:
			var client models.Client
			if err := tx.Where("user_id = ?", user.ID).First(&client).Error; err != nil {
				return err
			}
			if err := tx.Where("client_id = ?", client.ID).Delete(&models.MealHistory{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&client).Error; err != nil {
				return err
			}
		case models.RoleDoctor:
			var doctor models.Doctor
			if err := tx.Where("user_id = ?", user.ID).First(&doctor).Error; err != nil {
				return err
			}
			// Patients keep their accounts, they just lose the link.
			if err := tx.Model(&models.Client{}).
				Where("doctor_id = ?", doctor.ID).
				Update("doctor_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Delete(&doctor).Error; err != nil {
				return err
			}
		case models.RoleAdmin:
			if err := tx.Where("user_id = ?", user.ID).Delete(&models.Admin{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(user).Error
	})
}

// RelationshipFactsFor resolves everything the access policy needs to
// know about a target account and its links to the requester.
func RelationshipFactsFor(requester Requester, targetEmail string) (RelationshipFacts, error) {
	user, err := FindUserByEmail(targetEmail)
	if err != nil {
		return RelationshipFacts{}, err
	}

	role, err := ResolveRole(user.ID)
	if err != nil {
		return RelationshipFacts{}, err
	}

	facts := RelationshipFacts{TargetRole: role}

	switch role {
	case models.RoleClient:
		client, err := findClient(targetEmail)
		if err != nil {
			return RelationshipFacts{}, err
		}
		if client.DoctorID != nil {
			var doctor models.Doctor
			if err := config.DB.Preload("User").First(&doctor, *client.DoctorID).Error; err == nil {
				facts.AssignedDoctor = doctor.User.Email
			}
		}
	case models.RoleDoctor:
		doctor, err := findDoctor(targetEmail)
		if err != nil {
			return RelationshipFacts{}, err
		}
		facts.DoctorHospital = doctor.Hospital

		if requester.Role == models.RoleClient {
			client, err := findClient(requester.Email)
			if err == nil && client.DoctorID != nil && *client.DoctorID == doctor.ID {
				facts.RequesterDoctor = doctor.User.Email
			}
		}
	}

	return facts, nil
}
