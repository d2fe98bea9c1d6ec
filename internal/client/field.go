package client

// Field names one editable attribute of a client. The identity is not a Field.
type Field int

const (
	FieldFirstName Field = iota + 1
	FieldLastName
	FieldCompany
	FieldEmail
	FieldPhone
	FieldStreetAddress
	FieldCity
	FieldState
	FieldZip
	FieldNotes
)

var fieldLabels = map[Field]string{
	FieldFirstName:     "First Name",
	FieldLastName:      "Last Name",
	FieldCompany:       "Company",
	FieldEmail:         "Email",
	FieldPhone:         "Phone",
	FieldStreetAddress: "Street Address",
	FieldCity:          "City",
	FieldState:         "State",
	FieldZip:           "ZIP",
	FieldNotes:         "Notes",
}

var fieldKeys = map[Field]string{
	FieldFirstName:     "first_name",
	FieldLastName:      "last_name",
	FieldCompany:       "company",
	FieldEmail:         "email",
	FieldPhone:         "phone",
	FieldStreetAddress: "street_address",
	FieldCity:          "city",
	FieldState:         "state",
	FieldZip:           "zip",
	FieldNotes:         "notes",
}

// AllFields lists the editable fields in prompt order.
func AllFields() []Field {
	return []Field{
		FieldFirstName, FieldLastName, FieldCompany, FieldEmail, FieldPhone,
		FieldStreetAddress, FieldCity, FieldState, FieldZip, FieldNotes,
	}
}

func (f Field) Valid() bool {
	_, ok := fieldLabels[f]
	return ok
}

func (f Field) String() string {
	if l, ok := fieldLabels[f]; ok {
		return l
	}
	return "Unknown"
}

// Key is the snake_case name used in logs and form keys.
func (f Field) Key() string {
	return fieldKeys[f]
}

// Get returns the current value of a single field.
func (fs *Fields) Get(f Field) string {
	switch f {
	case FieldFirstName:
		return fs.FirstName
	case FieldLastName:
		return fs.LastName
	case FieldCompany:
		return fs.Company
	case FieldEmail:
		return fs.Email
	case FieldPhone:
		return fs.Phone
	case FieldStreetAddress:
		return fs.StreetAddress
	case FieldCity:
		return fs.City
	case FieldState:
		return fs.State
	case FieldZip:
		return fs.Zip
	case FieldNotes:
		return fs.Notes
	}
	return ""
}

// Set overwrites a single field. The value is stored as given; creation-time
// rules are not re-applied here. Unknown fields are ignored and reported false.
func (fs *Fields) Set(f Field, v string) bool {
	switch f {
	case FieldFirstName:
		fs.FirstName = v
	case FieldLastName:
		fs.LastName = v
	case FieldCompany:
		fs.Company = v
	case FieldEmail:
		fs.Email = v
	case FieldPhone:
		fs.Phone = v
	case FieldStreetAddress:
		fs.StreetAddress = v
	case FieldCity:
		fs.City = v
	case FieldState:
		fs.State = v
	case FieldZip:
		fs.Zip = v
	case FieldNotes:
		fs.Notes = v
	default:
		return false
	}
	return true
}
