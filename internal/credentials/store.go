// Package credentials est le store de persistance des comptes (ScyllaDB) :
// table users + table de correspondance users_by_email pour la recherche par email.
package credentials

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gocql/gocql"

	"atelier_back_end/internal/database"
	"atelier_back_end/internal/models"
)

var ErrNotFound = errors.New("utilisateur introuvable")

// NormalizeEmail met l'email en forme canonique : l'email est la clé d'identité,
// insensible à la casse.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindByEmail retourne le compte associé à un email, ou ErrNotFound
func FindByEmail(ctx context.Context, email string) (*models.User, error) {
	email = NormalizeEmail(email)

	stmt := database.GetPreparedGetUserIDByEmail()
	if stmt == nil {
		return nil, errors.New("prepared statements non initialisés")
	}

	var userID gocql.UUID
	if err := stmt.Bind(email).WithContext(ctx).Scan(&userID); err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var storedEmail, password, name string
	if err := database.GetPreparedGetUserByID().Bind(userID).WithContext(ctx).
		Scan(&storedEmail, &password, &name); err != nil {
		if errors.Is(err, gocql.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &models.User{
		ID:       userID.String(),
		Name:     name,
		Email:    storedEmail,
		Password: password,
	}, nil
}

// Create enregistre un nouveau compte. L'appelant doit avoir vérifié que
// l'email est libre (FindByEmail) — les comptes ne sont jamais écrasés.
func Create(ctx context.Context, u *models.User) error {
	u.Email = NormalizeEmail(u.Email)

	userID := gocql.TimeUUID()
	u.ID = userID.String()
	now := time.Now()

	stmtUser := database.GetPreparedInsertUser()
	stmtByEmail := database.GetPreparedInsertUserByEmail()
	if stmtUser == nil || stmtByEmail == nil {
		return errors.New("prepared statements non initialisés")
	}

	if err := stmtUser.Bind(userID, u.Email, u.Password, u.Name, now).WithContext(ctx).Exec(); err != nil {
		return err
	}

	if err := stmtByEmail.Bind(u.Email, userID).WithContext(ctx).Exec(); err != nil {
		return err
	}

	return nil
}
