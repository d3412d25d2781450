package viewmodel

import (
	"context"
	"errors"

	"github.com/hirebase/hirebase-go/internal/client/api"
	"github.com/hirebase/hirebase-go/internal/model"
)

// TransportError is the sentinel error code recorded when the server cannot
// be reached or answers with a body this client cannot parse.
const TransportError = -1

// Competence is a UI-side competence entry; the presentation forms populate
// it, not the server.
type Competence struct {
	Name              string
	YearsOfExperience float64
}

// CreateAccountParams carries the registration form fields.
type CreateAccountParams struct {
	FirstName    string
	LastName     string
	PersonNumber string
	Email        string
	Username     string
	Password     string
}

var errUnknownResponse = errors.New("unknown response shape")

// ViewModel is the single authoritative client-side state container and the
// only component that performs network I/O for identity and application
// data. Registered observers are the sole notification channel to
// presentation; there is no implicit reactivity.
//
// A ViewModel is single-owner and not safe for concurrent use. Callers are
// expected to keep at most one action in flight, e.g. by disabling the
// triggering control until the observer fires.
type ViewModel struct {
	client *api.Client

	firstName    string
	lastName     string
	personNumber string
	email        string
	username     string
	competences  []Competence
	role         int64
	signedIn     bool
	currentError int

	// Last successfully fetched applications; returned again when a
	// refresh fails so presentation always has a renderable value.
	applications []model.Application

	onAuthChange func(bool)
	onChange     func(*ViewModel)
}

// New creates a ViewModel backed by the given API client. Observers default
// to no-ops until registered.
func New(client *api.Client) *ViewModel {
	return &ViewModel{
		client:       client,
		onAuthChange: func(bool) {},
		onChange:     func(*ViewModel) {},
	}
}

// OnChange registers the observer invoked synchronously after every state
// mutation.
func (vm *ViewModel) OnChange(fn func(*ViewModel)) {
	if fn == nil {
		fn = func(*ViewModel) {}
	}
	vm.onChange = fn
}

// OnAuthChange registers the observer additionally invoked whenever the
// signed-in state changes.
func (vm *ViewModel) OnAuthChange(fn func(bool)) {
	if fn == nil {
		fn = func(bool) {}
	}
	vm.onAuthChange = fn
}

// Login authenticates against the server. The returned bool is the new
// signed-in state. Expected failures never surface as errors: bad
// credentials record the server's error code, an unreachable server records
// TransportError. A non-nil error means the response had a shape this client
// does not know.
func (vm *ViewModel) Login(ctx context.Context, username, password string) (bool, error) {
	resp, err := vm.client.Login(ctx, username, password)
	if err != nil {
		vm.SetCurrentError(TransportError)
		return false, nil
	}

	switch {
	case resp.Message != "" && resp.FoundUser != nil:
		vm.setUser(*resp.FoundUser)
		vm.changeAuthState(true)
	case resp.Error != nil:
		vm.SetCurrentError(resp.Error.ErrorCode)
		vm.changeAuthState(false)
	default:
		vm.SetCurrentError(TransportError)
		return false, errUnknownResponse
	}

	return vm.signedIn, nil
}

// CreateAccount registers a new account. Success does not sign the user in;
// logging in is a separate step.
func (vm *ViewModel) CreateAccount(ctx context.Context, params CreateAccountParams) bool {
	resp, err := vm.client.Register(ctx, model.RegisterRequest{
		Name:     params.FirstName,
		Surname:  params.LastName,
		Pnr:      params.PersonNumber,
		Email:    params.Email,
		Username: params.Username,
		Password: params.Password,
	})
	if err != nil {
		// Validation rejections arrive as plain text and fail to decode,
		// so they land here together with genuine transport failures.
		vm.SetCurrentError(TransportError)
		return false
	}

	switch {
	case resp.Message != "":
		return true
	case resp.Error != nil:
		vm.SetCurrentError(resp.Error.ErrorCode)
		return false
	default:
		vm.SetCurrentError(TransportError)
		return false
	}
}

// ListAllApplications fetches the submitted applications. On any failure the
// last-known (possibly empty) list is returned instead.
func (vm *ViewModel) ListAllApplications(ctx context.Context) []model.Application {
	resp, err := vm.client.ListApplications(ctx)
	if err != nil || resp.Message == "" {
		return vm.lastApplications()
	}

	vm.applications = resp.Applications
	vm.notify()
	return vm.lastApplications()
}

// Logout asks the server to clear the session cookie. Local signed-in state
// only flips on a confirmed 2xx; an unreachable server leaves it unchanged.
func (vm *ViewModel) Logout(ctx context.Context) bool {
	status, err := vm.client.Logout(ctx)
	if err != nil {
		return false
	}
	if status < 200 || status >= 300 {
		return false
	}

	vm.changeAuthState(false)
	return true
}

func (vm *ViewModel) setUser(user model.FoundUser) {
	vm.SetFirstName(user.Name)
	vm.SetLastName(user.Surname)
	vm.SetPersonNumber(user.Pnr)
	vm.SetEmail(user.Email)
	vm.SetUsername(user.Username)
	vm.SetRole(user.RoleID)
}

// changeAuthState flips the signed-in flag and fires both observers.
func (vm *ViewModel) changeAuthState(signedIn bool) {
	vm.signedIn = signedIn
	vm.onAuthChange(signedIn)
	vm.notify()
}

func (vm *ViewModel) notify() {
	vm.onChange(vm)
}

func (vm *ViewModel) lastApplications() []model.Application {
	if vm.applications == nil {
		return []model.Application{}
	}
	return vm.applications
}

// SetFirstName sets the first name and notifies the state observer.
func (vm *ViewModel) SetFirstName(firstName string) {
	vm.firstName = firstName
	vm.notify()
}

// SetLastName sets the last name and notifies the state observer.
func (vm *ViewModel) SetLastName(lastName string) {
	vm.lastName = lastName
	vm.notify()
}

// SetPersonNumber sets the national person number and notifies the state
// observer.
func (vm *ViewModel) SetPersonNumber(personNumber string) {
	vm.personNumber = personNumber
	vm.notify()
}

// SetEmail sets the email and notifies the state observer.
func (vm *ViewModel) SetEmail(email string) {
	vm.email = email
	vm.notify()
}

// SetUsername sets the username and notifies the state observer.
func (vm *ViewModel) SetUsername(username string) {
	vm.username = username
	vm.notify()
}

// SetCompetences sets the competence entries and notifies the state observer.
func (vm *ViewModel) SetCompetences(competences []Competence) {
	vm.competences = competences
	vm.notify()
}

// SetRole sets the role id and notifies the state observer.
func (vm *ViewModel) SetRole(role int64) {
	vm.role = role
	vm.notify()
}

// SetCurrentError records an error code for the UI and notifies the state
// observer.
func (vm *ViewModel) SetCurrentError(currentError int) {
	vm.currentError = currentError
	vm.notify()
}

// FirstName returns the first name.
func (vm *ViewModel) FirstName() string { return vm.firstName }

// LastName returns the last name.
func (vm *ViewModel) LastName() string { return vm.lastName }

// PersonNumber returns the national person number.
func (vm *ViewModel) PersonNumber() string { return vm.personNumber }

// Email returns the email.
func (vm *ViewModel) Email() string { return vm.email }

// Username returns the username.
func (vm *ViewModel) Username() string { return vm.username }

// Competences returns the competence entries.
func (vm *ViewModel) Competences() []Competence { return vm.competences }

// Role returns the role id.
func (vm *ViewModel) Role() int64 { return vm.role }

// SignedIn reports whether the user is signed in.
func (vm *ViewModel) SignedIn() bool { return vm.signedIn }

// CurrentError returns the last recorded error code, 0 when none.
func (vm *ViewModel) CurrentError() int { return vm.currentError }
