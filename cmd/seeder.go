package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/frahmantamala/org-directory/internal/employee"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), cfg.Security.BCryptCost)

		departments := []string{"Engineering", "Finance", "People Operations"}
		for _, name := range departments {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM departments WHERE name = $1", name).Scan(&exists); err == nil {
				continue
			}
			if _, err := db.Exec("INSERT INTO departments (name, created_at, updated_at) VALUES ($1, now(), now())", name); err != nil {
				log.Fatalf("failed to insert department %s: %v", name, err)
			}
			fmt.Println("Seeded department:", name)
		}

		var engineeringID int64
		if err := db.QueryRow("SELECT id FROM departments WHERE name = $1", "Engineering").Scan(&engineeringID); err != nil {
			log.Fatalf("failed to lookup Engineering department id: %v", err)
		}

		superAdminEmail := "root@orgdirectory.io"
		var superAdminID int64
		err = db.QueryRow("SELECT id FROM employees WHERE official_email = $1", superAdminEmail).Scan(&superAdminID)
		if err != nil {
			if err := db.QueryRow(
				`INSERT INTO employees
					(first_name, last_name, official_email, contact_number, password_hash, role, designation, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
				RETURNING id`,
				"Root", "Admin", superAdminEmail, "+620000000001", string(hash),
				string(employee.RoleSuperAdmin), "Chief Executive Officer",
			).Scan(&superAdminID); err != nil {
				log.Fatalf("failed to insert super admin: %v", err)
			}
			fmt.Println("Seeded super admin:", superAdminEmail)
		} else {
			fmt.Println("super admin already exists:", superAdminEmail)
		}

		managerEmail := "dina@orgdirectory.io"
		var managerID int64
		err = db.QueryRow("SELECT id FROM employees WHERE official_email = $1", managerEmail).Scan(&managerID)
		if err != nil {
			if err := db.QueryRow(
				`INSERT INTO employees
					(first_name, last_name, official_email, contact_number, password_hash, role, designation, department_id, reporting_manager_id, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
				RETURNING id`,
				"Dina", "Prameswari", managerEmail, "+620000000002", string(hash),
				string(employee.RoleAdmin), "Engineering Manager", engineeringID, superAdminID,
			).Scan(&managerID); err != nil {
				log.Fatalf("failed to insert manager: %v", err)
			}
			fmt.Println("Seeded manager:", managerEmail)
		} else {
			fmt.Println("manager already exists:", managerEmail)
		}

		staff := []struct {
			FirstName string
			LastName  string
			Email     string
			Contact   string
		}{
			{"Bayu", "Santoso", "bayu@orgdirectory.io", "+620000000003"},
			{"Citra", "Lestari", "citra@orgdirectory.io", "+620000000004"},
		}

		for _, s := range staff {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM employees WHERE official_email = $1", s.Email).Scan(&exists); err == nil {
				fmt.Println("employee already exists:", s.Email)
				continue
			}
			if _, err := db.Exec(
				`INSERT INTO employees
					(first_name, last_name, official_email, contact_number, password_hash, role, designation, department_id, reporting_manager_id, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())`,
				s.FirstName, s.LastName, s.Email, s.Contact, string(hash),
				string(employee.RoleEmployee), "Software Engineer", engineeringID, managerID,
			); err != nil {
				log.Fatalf("failed to insert employee %s: %v", s.Email, err)
			}
			fmt.Println("Seeded employee:", s.Email)
		}

		fmt.Println("Seeding completed")
	},
}
