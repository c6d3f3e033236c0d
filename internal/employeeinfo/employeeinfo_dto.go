package employeeinfo

// Information is the extended personal record kept alongside an employee:
// address, emergency contact and payment details.
type Information struct {
	ID                           string `json:"id"`
	EmployeeID                   string `json:"employeeId"`
	Address                      string `json:"address,omitempty"`
	City                         string `json:"city,omitempty"`
	State                        string `json:"state,omitempty"`
	PostalCode                   string `json:"postalCode,omitempty"`
	Country                      string `json:"country,omitempty"`
	PhoneNumber                  string `json:"phoneNumber"`
	MobileNumber                 string `json:"mobileNumber,omitempty"`
	DateOfBirth                  string `json:"dateOfBirth"`
	Gender                       string `json:"gender,omitempty"`
	MaritalStatus                string `json:"maritalStatus,omitempty"`
	Nationality                  string `json:"nationality,omitempty"`
	EmergencyContactName         string `json:"emergencyContactName"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship"`
	EmergencyContactPhone        string `json:"emergencyContactPhone"`
	BankName                     string `json:"bankName,omitempty"`
	BankAccountNumber            string `json:"bankAccountNumber,omitempty"`
	CreatedAt                    string `json:"createdAt,omitempty"`
	UpdatedAt                    string `json:"updatedAt,omitempty"`
}

type CreateInformationRequest struct {
	EmployeeID                   string `json:"employeeId" validate:"required"`
	Address                      string `json:"address,omitempty" validate:"max=500"`
	City                         string `json:"city,omitempty" validate:"max=100"`
	State                        string `json:"state,omitempty" validate:"max=100"`
	PostalCode                   string `json:"postalCode,omitempty" validate:"max=20"`
	Country                      string `json:"country,omitempty" validate:"max=100"`
	PhoneNumber                  string `json:"phoneNumber" validate:"required,max=20"`
	MobileNumber                 string `json:"mobileNumber,omitempty" validate:"max=20"`
	DateOfBirth                  string `json:"dateOfBirth" validate:"required"`
	Gender                       string `json:"gender,omitempty"`
	MaritalStatus                string `json:"maritalStatus,omitempty"`
	Nationality                  string `json:"nationality,omitempty" validate:"max=100"`
	EmergencyContactName         string `json:"emergencyContactName" validate:"required,max=200"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship" validate:"required,max=100"`
	EmergencyContactPhone        string `json:"emergencyContactPhone" validate:"required,max=20"`
	BankName                     string `json:"bankName,omitempty" validate:"max=200"`
	BankAccountNumber            string `json:"bankAccountNumber,omitempty" validate:"max=50"`
}

type UpdateInformationRequest struct {
	Address                      string `json:"address,omitempty" validate:"max=500"`
	City                         string `json:"city,omitempty" validate:"max=100"`
	State                        string `json:"state,omitempty" validate:"max=100"`
	PostalCode                   string `json:"postalCode,omitempty" validate:"max=20"`
	Country                      string `json:"country,omitempty" validate:"max=100"`
	PhoneNumber                  string `json:"phoneNumber" validate:"required,max=20"`
	MobileNumber                 string `json:"mobileNumber,omitempty" validate:"max=20"`
	DateOfBirth                  string `json:"dateOfBirth" validate:"required"`
	Gender                       string `json:"gender,omitempty"`
	MaritalStatus                string `json:"maritalStatus,omitempty"`
	Nationality                  string `json:"nationality,omitempty" validate:"max=100"`
	EmergencyContactName         string `json:"emergencyContactName" validate:"required,max=200"`
	EmergencyContactRelationship string `json:"emergencyContactRelationship" validate:"required,max=100"`
	EmergencyContactPhone        string `json:"emergencyContactPhone" validate:"required,max=20"`
	BankName                     string `json:"bankName,omitempty" validate:"max=200"`
	BankAccountNumber            string `json:"bankAccountNumber,omitempty" validate:"max=50"`
}
