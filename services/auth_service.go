package services

import (
	"fmt"

	"github.com/MyLifeUa/rest-api/models"
	"github.com/MyLifeUa/rest-api/utils"
)

// AuthenticateUser checks credentials and issues a token plus the
// derived role, resolved once here and carried through the request
// context afterwards.
func AuthenticateUser(email, password string) (token string, role models.Role, err error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return "", "", fmt.Errorf("invalid login credentials: %w", models.ErrNotFound)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", "", fmt.Errorf("invalid login credentials: %w", models.ErrNotFound)
	}

	role, err = ResolveRole(user.ID)
	if err != nil {
		return "", "", err
	}

	token, err = utils.GenerateJWT(user.Email)
	if err != nil {
		return "", "", err
	}

	return token, role, nil
}

// RequesterFor rebuilds the Requester capability for an authenticated
// email: role plus hospital when the role carries one.
func RequesterFor(email string) (Requester, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return Requester{}, err
	}

	role, err := ResolveRole(user.ID)
	if err != nil {
		return Requester{}, err
	}

	requester := Requester{Role: role, Email: email}
	switch role {
	case models.RoleAdmin:
		admin, err := findAdmin(email)
		if err != nil {
			return Requester{}, err
		}
		requester.Hospital = admin.Hospital
	case models.RoleDoctor:
		doctor, err := findDoctor(email)
		if err != nil {
			return Requester{}, err
		}
		requester.Hospital = doctor.Hospital
	}
	return requester, nil
}
