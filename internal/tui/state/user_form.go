package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// User form fields, in tab order.
const (
	UserFieldUsername = iota
	UserFieldEmail
	UserFieldPassword
	UserFieldPhone
	UserFieldShift
	UserFieldUserType
	UserFieldEmployeeID
	UserFieldSave
	UserFieldCancel
)

const userFieldCount = 9

// Shift and user type choices offered by the editor.
var (
	ShiftOptions    = []string{"morning", "afternoon", "evening", "night"}
	UserTypeOptions = []string{"admin", "supervisor", "worker"}
)

// UserDraft is the local-only state of the user edit modal.
type UserDraft struct {
	Username    string
	Email       string
	Password    string
	PhoneNumber string
	Shift       string // one of ShiftOptions, or empty
	UserType    string // one of UserTypeOptions, or empty
	EmployeeID  string
}

// UserForm is the user edit modal. Nothing it holds is ever persisted.
type UserForm struct {
	Index      int // roster row being edited
	Username   textinput.Model
	Email      textinput.Model
	Password   textinput.Model
	Phone      textinput.Model
	EmployeeID textinput.Model
	ShiftIdx   int // -1 while unset
	TypeIdx    int // -1 while unset
	FocusIndex int
}

// NewUserForm opens the editor for a roster entry: the first whitespace
// separated token of the display name seeds the username, everything else is blank.
func NewUserForm(index int, displayName string) *UserForm {
	newInput := func(placeholder string, limit int) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = limit
		ti.Width = 40
		return ti
	}

	f := &UserForm{
		Index:      index,
		Username:   newInput("Username", 100),
		Email:      newInput("Email", 254),
		Password:   newInput("Password", 128),
		Phone:      newInput("Phone Number", 32),
		EmployeeID: newInput("Employee ID", 32),
		ShiftIdx:   -1,
		TypeIdx:    -1,
	}
	f.Password.EchoMode = textinput.EchoPassword
	f.Password.EchoCharacter = '•'

	if tokens := strings.Fields(displayName); len(tokens) > 0 {
		f.Username.SetValue(tokens[0])
	}

	f.Focus(UserFieldUsername)
	return f
}

// Draft returns the current field values.
func (f *UserForm) Draft() UserDraft {
	d := UserDraft{
		Username:    f.Username.Value(),
		Email:       f.Email.Value(),
		Password:    f.Password.Value(),
		PhoneNumber: f.Phone.Value(),
		EmployeeID:  f.EmployeeID.Value(),
	}
	if f.ShiftIdx >= 0 {
		d.Shift = ShiftOptions[f.ShiftIdx]
	}
	if f.TypeIdx >= 0 {
		d.UserType = UserTypeOptions[f.TypeIdx]
	}
	return d
}

// Update routes key input to the focused field.
func (f *UserForm) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			f.NextField()
			return nil
		case "shift+tab", "up":
			f.PrevField()
			return nil
		}

		switch f.FocusIndex {
		case UserFieldShift:
			f.ShiftIdx = cycleOption(f.ShiftIdx, len(ShiftOptions), key.String())
			return nil
		case UserFieldUserType:
			f.TypeIdx = cycleOption(f.TypeIdx, len(UserTypeOptions), key.String())
			return nil
		case UserFieldSave, UserFieldCancel:
			return nil
		}
	}

	var cmd tea.Cmd
	if input := f.focusedInput(); input != nil {
		*input, cmd = input.Update(msg)
	}
	return cmd
}

// cycleOption moves a select-style index left or right, wrapping through "unset".
func cycleOption(idx, n int, key string) int {
	switch key {
	case "right", "l", " ":
		idx++
		if idx >= n {
			idx = -1
		}
	case "left", "h":
		idx--
		if idx < -1 {
			idx = n - 1
		}
	}
	return idx
}

func (f *UserForm) focusedInput() *textinput.Model {
	switch f.FocusIndex {
	case UserFieldUsername:
		return &f.Username
	case UserFieldEmail:
		return &f.Email
	case UserFieldPassword:
		return &f.Password
	case UserFieldPhone:
		return &f.Phone
	case UserFieldEmployeeID:
		return &f.EmployeeID
	}
	return nil
}

// NextField moves focus to the next field.
func (f *UserForm) NextField() {
	f.Focus((f.FocusIndex + 1) % userFieldCount)
}

// PrevField moves focus to the previous field.
func (f *UserForm) PrevField() {
	f.Focus((f.FocusIndex - 1 + userFieldCount) % userFieldCount)
}

// Focus focuses the field at index and blurs the others.
func (f *UserForm) Focus(index int) {
	f.FocusIndex = index
	for _, in := range []*textinput.Model{&f.Username, &f.Email, &f.Password, &f.Phone, &f.EmployeeID} {
		in.Blur()
	}
	if input := f.focusedInput(); input != nil {
		input.Focus()
	}
}
