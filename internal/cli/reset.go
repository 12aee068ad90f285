package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/terraincognita07/nutritrack/internal/db"
	"github.com/terraincognita07/nutritrack/internal/security"
	"github.com/terraincognita07/nutritrack/internal/services"
	"golang.org/x/crypto/bcrypt"
)

// RunResetPasswordCommand replaces a registered participant's password from
// the command line. When stdin is an interactive terminal the new password is
// prompted without echo and validated against the same strength policy the
// registration flow enforces; otherwise a temporary password is generated and
// printed so the command stays usable from scripts.
func RunResetPasswordCommand(dbPath string, userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errors.New("user id is required")
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database, nil)
	user, err := repositories.Users.FindByID(userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if user == nil {
		return fmt.Errorf("user %s not found", userID)
	}
	if !user.Registered {
		return fmt.Errorf("user %s has not registered yet", userID)
	}

	password, generated, err := obtainNewPassword(os.Stdin)
	if err != nil {
		return err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	name := ""
	if user.Name != nil {
		name = *user.Name
	}
	if err := repositories.Users.RegisterCredential(userID, name, string(passwordHash)); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Println("Password reset successful")
	if generated {
		fmt.Printf("Temporary password: %s\n", password)
	}
	return nil
}

func obtainNewPassword(stdin *os.File) (password string, generated bool, err error) {
	if stdin == nil || !isTerminal(stdin) {
		temporary, err := generateTemporaryPassword(12)
		if err != nil {
			return "", false, fmt.Errorf("generate temporary password: %w", err)
		}
		return temporary, true, nil
	}

	fmt.Print("New password: ")
	first, err := readPasswordNoEcho(stdin)
	fmt.Println()
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}
	if err := services.ValidatePasswordStrength(string(first)); err != nil {
		return "", false, err
	}

	fmt.Print("Repeat password: ")
	second, err := readPasswordNoEcho(stdin)
	fmt.Println()
	if err != nil {
		return "", false, fmt.Errorf("read password: %w", err)
	}
	if string(first) != string(second) {
		return "", false, errors.New("passwords do not match")
	}

	return string(first), false, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
