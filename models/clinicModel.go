package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Patient model. Registration is the only write path; records are
// immutable afterwards, so there is no update flow for this table.
type Patient struct {
	PatientID     string    `gorm:"primaryKey;column:patient_id" json:"patient_id"`
	Name          string    `gorm:"column:name;not null;index" json:"name"`
	DateOfBirth   string    `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	Age           int       `gorm:"column:age;not null" json:"age"`
	Gender        string    `gorm:"column:gender;check:gender IN ('Male', 'Female', 'Other');not null" json:"gender"`
	ContactNumber string    `gorm:"column:contact_number;not null" json:"contact_number"`
	Address       string    `gorm:"column:address;not null" json:"address"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Bills         []Bill         `gorm:"foreignKey:PatientID;references:PatientID" json:"-"`
	Prescriptions []Prescription `gorm:"foreignKey:PatientID;references:PatientID" json:"-"`
}

func (Patient) TableName() string {
	return "patients"
}

// Doctor model
type Doctor struct {
	DoctorID           string          `gorm:"primaryKey;column:doctor_id" json:"doctor_id"`
	Name               string          `gorm:"column:name;not null;index" json:"name"`
	ContactNumber      string          `gorm:"column:contact_number;not null" json:"contact_number"`
	RegistrationNumber string          `gorm:"column:registration_number;not null" json:"registration_number"`
	OPDFee             decimal.Decimal `gorm:"column:opd_fee;type:numeric(10,2);not null" json:"opd_fee"`
	CreatedAt          time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Prescriptions []Prescription `gorm:"foreignKey:DoctorID;references:DoctorID" json:"-"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// Service catalog entry
type Service struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	ServiceName string          `gorm:"column:service_name;not null;index" json:"service_name"`
	ServiceType string          `gorm:"column:service_type;check:service_type IN ('Consultation', 'Imaging', 'Therapy', 'Lab Test');not null" json:"service_type"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(10,2);not null" json:"price"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Service) TableName() string {
	return "services"
}

// Bill statuses
const (
	BillStatusPending = "Pending"
	BillStatusPaid    = "Paid"
)

// Bill model. The balance column always equals total_amount - paid_amount;
// both are written together inside the creation transaction.
type Bill struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	BillNumber  string          `gorm:"column:bill_number;unique;not null" json:"bill_number"`
	PatientID   string          `gorm:"column:patient_id;not null;index" json:"patient_id"`
	TotalAmount decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null" json:"total_amount"`
	PaidAmount  decimal.Decimal `gorm:"column:paid_amount;type:numeric(12,2);not null" json:"paid_amount"`
	Balance     decimal.Decimal `gorm:"column:balance;type:numeric(12,2);not null" json:"balance"`
	Status      string          `gorm:"column:status;check:status IN ('Pending', 'Paid');not null;default:'Pending'" json:"status"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Patient Patient    `gorm:"foreignKey:PatientID;references:PatientID" json:"-"`
	Items   []BillItem `gorm:"foreignKey:BillID;references:ID" json:"items"`
}

func (Bill) TableName() string {
	return "bills"
}

// BillItem model. UnitPrice is a snapshot of the service price at bill
// creation time; later catalog changes never alter historical bills.
type BillItem struct {
	ID          int64           `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	BillID      int64           `gorm:"column:bill_id;not null;index" json:"bill_id"`
	ServiceID   int64           `gorm:"column:service_id;not null;index" json:"service_id"`
	ServiceName string          `gorm:"column:service_name;not null" json:"service_name"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(10,2);not null" json:"unit_price"`
	Quantity    int             `gorm:"column:quantity;check:quantity >= 1;not null;default:1" json:"quantity"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric(12,2);not null" json:"amount"`
	Discount    decimal.Decimal `gorm:"column:discount;type:numeric(12,2);not null;default:0" json:"discount"`
	FinalAmount decimal.Decimal `gorm:"column:final_amount;type:numeric(12,2);not null" json:"final_amount"`

	Service Service `gorm:"foreignKey:ServiceID;references:ID" json:"-"`
}

func (BillItem) TableName() string {
	return "bill_items"
}

// BillLineItem is a submitted bill row before persistence.
type BillLineItem struct {
	ServiceID int64 `json:"service_id"`
	Quantity  int   `json:"quantity"`
}

// Prescription model
type Prescription struct {
	ID          int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	PatientID   string    `gorm:"column:patient_id;not null;index" json:"patient_id"`
	DoctorID    string    `gorm:"column:doctor_id;not null;index" json:"doctor_id"`
	Diagnosis   string    `gorm:"column:diagnosis" json:"diagnosis"`
	Medications string    `gorm:"column:medications" json:"medications"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Patient Patient `gorm:"foreignKey:PatientID;references:PatientID" json:"patient"`
	Doctor  Doctor  `gorm:"foreignKey:DoctorID;references:DoctorID" json:"doctor"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}
