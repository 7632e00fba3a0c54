package kvstore

import (
	"strings"

	"github.com/trezcool/kitivo/core/user"
)

type userRepository struct {
	users  *Table[user.User]
	roster *Single[[]string]
}

var _ user.Repository = (*userRepository)(nil)

func (s *Store) UserRepository() user.Repository {
	return &userRepository{users: s.users, roster: s.roster}
}

func (repo *userRepository) CreateUser(usr user.User) (user.User, error) {
	return repo.users.Insert(usr)
}

func (repo *userRepository) QueryAllUsers() ([]user.User, error) {
	return repo.users.List(), nil
}

func (repo *userRepository) GetUserByID(id int) (user.User, error) {
	if usr, ok := repo.users.Get(id); ok {
		return usr, nil
	}
	return user.User{}, user.ErrNotFound
}

func (repo *userRepository) GetUserByIdentifier(identifier string) (user.User, error) {
	identifier = strings.ToLower(identifier)
	usr, ok := repo.users.Find(func(u user.User) bool {
		return strings.ToLower(u.Username) == identifier ||
			strings.ToLower(u.Email) == identifier ||
			strings.ToLower(u.MatricNumber) == identifier
	})
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}

func (repo *userRepository) GetUserByMatric(matric string) (user.User, error) {
	usr, ok := repo.users.Find(func(u user.User) bool {
		return strings.EqualFold(u.MatricNumber, matric)
	})
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return usr, nil
}

func (repo *userRepository) UpdateUser(usr user.User) (user.User, error) {
	updated, ok, err := repo.users.Replace(usr.ID, usr)
	if err != nil {
		return user.User{}, err
	}
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return updated, nil
}

func (repo *userRepository) DeleteUsersByID(ids ...int) error {
	for _, id := range ids {
		if _, err := repo.users.Remove(id); err != nil {
			return err
		}
	}
	return nil
}

func (repo *userRepository) QueryRoster() ([]string, error) {
	return repo.roster.Get(), nil
}

func (repo *userRepository) AddToRoster(matric string) error {
	roster := repo.roster.Get()
	for _, m := range roster {
		if strings.EqualFold(m, matric) {
			return nil
		}
	}
	return repo.roster.Put(append(roster, matric))
}

func (repo *userRepository) RemoveFromRoster(matric string) error {
	roster := repo.roster.Get()
	for i, m := range roster {
		if strings.EqualFold(m, matric) {
			return repo.roster.Put(append(roster[:i], roster[i+1:]...))
		}
	}
	return nil
}
