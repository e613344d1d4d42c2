package handler

import (
	"sync"

	"github.com/vcdice-69/Parked-Up/internal/model"
	"github.com/vcdice-69/Parked-Up/internal/store"
	"github.com/vcdice-69/Parked-Up/internal/validate"
)

// fakeFavouriteStore is an in-memory FavouriteStore for handler tests.
type fakeFavouriteStore struct {
	mu   sync.Mutex
	favs []model.Favourite
	err  error // when set, every call fails with it
}

func newFakeFavouriteStore() *fakeFavouriteStore {
	return &fakeFavouriteStore{}
}

func (f *fakeFavouriteStore) Add(email, carparkNo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.favs = append(f.favs, model.Favourite{UserEmail: email, CarparkNo: carparkNo})
	return nil
}

func (f *fakeFavouriteStore) Remove(email, carparkNo string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	kept := f.favs[:0]
	for _, fav := range f.favs {
		if fav.UserEmail != email || fav.CarparkNo != carparkNo {
			kept = append(kept, fav)
		}
	}
	f.favs = kept
	return nil
}

func (f *fakeFavouriteStore) List(email string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var carparks []string
	for _, fav := range f.favs {
		if fav.UserEmail == email {
			carparks = append(carparks, fav.CarparkNo)
		}
	}
	return carparks, nil
}

func (f *fakeFavouriteStore) RenameOwner(oldEmail, newEmail string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.favs {
		if f.favs[i].UserEmail == oldEmail {
			f.favs[i].UserEmail = newEmail
		}
	}
	return nil
}

func (f *fakeFavouriteStore) DeleteAll(email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	kept := f.favs[:0]
	for _, fav := range f.favs {
		if fav.UserEmail != email {
			kept = append(kept, fav)
		}
	}
	f.favs = kept
	return nil
}

// fakeAccountStore is an in-memory AccountStore for handler tests. It applies
// the same validation and cascades as the real store.
type fakeAccountStore struct {
	mu       sync.Mutex
	accounts map[string]*model.Account
	favs     *fakeFavouriteStore
}

func newFakeAccountStore(favs *fakeFavouriteStore) *fakeAccountStore {
	return &fakeAccountStore{
		accounts: map[string]*model.Account{},
		favs:     favs,
	}
}

func (f *fakeAccountStore) Find(email string) (*model.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if acc, ok := f.accounts[email]; ok {
		copied := *acc
		return &copied, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeAccountStore) Create(username, email, phoneNo, password string) error {
	if !validate.IsValidEmail(email) {
		return store.ErrInvalidEmail
	}
	if !validate.IsValidPhone(phoneNo) {
		return store.ErrInvalidPhone
	}
	if !validate.IsStrongPassword(password) {
		return store.ErrWeakPassword
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[email] = &model.Account{
		Username: username,
		Email:    email,
		PhoneNo:  phoneNo,
		Password: password,
	}
	return nil
}

func (f *fakeAccountStore) Authenticate(email, password string) (*model.Account, error) {
	acc, err := f.Find(email)
	if err != nil {
		return nil, store.ErrInvalidCredentials
	}
	if acc.Password != password {
		return nil, store.ErrInvalidCredentials
	}
	return acc, nil
}

func (f *fakeAccountStore) Update(currentEmail string, rec store.AccountRecord) error {
	if _, err := f.Find(currentEmail); err != nil {
		return err
	}
	if !validate.IsValidEmail(rec.Email) {
		return store.ErrInvalidEmail
	}
	if !validate.IsValidPhone(rec.PhoneNo) {
		return store.ErrInvalidPhone
	}
	if !validate.IsStrongPassword(rec.Password) {
		return store.ErrWeakPassword
	}

	f.mu.Lock()
	delete(f.accounts, currentEmail)
	f.accounts[rec.Email] = &model.Account{
		Username: rec.Username,
		Email:    rec.Email,
		PhoneNo:  rec.PhoneNo,
		Password: rec.Password,
	}
	f.mu.Unlock()

	if currentEmail != rec.Email {
		return f.favs.RenameOwner(currentEmail, rec.Email)
	}
	return nil
}

func (f *fakeAccountStore) Delete(email string) error {
	if _, err := f.Find(email); err != nil {
		return err
	}
	if err := f.favs.DeleteAll(email); err != nil {
		return err
	}
	f.mu.Lock()
	delete(f.accounts, email)
	f.mu.Unlock()
	return nil
}

func (f *fakeAccountStore) Count() (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.accounts)), nil
}
