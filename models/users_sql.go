package models

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/navya24shree/Campus-Event-Management-System/utils"
)

// MySQL duplicate-key error (UNIQUE email, UNIQUE (event_id, email)).
const mysqlErrDupEntry = 1062

func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == mysqlErrDupEntry
}

type sqlUserRepo struct{ db *sql.DB }

func NewSQLUserRepository(db *sql.DB) UserRepository { return &sqlUserRepo{db} }

func (r *sqlUserRepo) Create(u *User) error {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	if u.Role == "" {
		u.Role = RoleStudent
	}

	res, err := r.db.Exec(`INSERT INTO users(name, email, password, role) VALUES (?,?,?,?)`,
		u.Name, u.Email, u.Password, u.Role)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	u.ID, err = res.LastInsertId()
	return err
}

func (r *sqlUserRepo) ValidateCredentials(email, plain string) (User, error) {
	var u User
	err := r.db.QueryRow(`SELECT id, name, email, password, role FROM users WHERE email=?`, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if !utils.CheckPasswordHash(plain, u.Password) {
		return User{}, ErrInvalidCredentials
	}
	return u, nil
}
