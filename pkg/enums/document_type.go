package enums

import "fmt"

// DocumentTypeName identifies the barangay document being requested.
type DocumentTypeName string

const (
	DocumentTypeBarangayPermit        DocumentTypeName = "Barangay Permit"
	DocumentTypeBarangayClearance     DocumentTypeName = "Barangay Clearance"
	DocumentTypeCertificateOfIndigent DocumentTypeName = "Certificate of Indigency"
	DocumentTypeCedula                DocumentTypeName = "Cedula"
	DocumentTypeBusinessClearance     DocumentTypeName = "Business Clearance"
	DocumentTypeFacilityReservation   DocumentTypeName = "Facility Reservation"
)

var validDocumentTypeNames = []DocumentTypeName{
	DocumentTypeBarangayPermit,
	DocumentTypeBarangayClearance,
	DocumentTypeCertificateOfIndigent,
	DocumentTypeCedula,
	DocumentTypeBusinessClearance,
	DocumentTypeFacilityReservation,
}

// String implements fmt.Stringer.
func (d DocumentTypeName) String() string {
	return string(d)
}

// IsValid reports whether the value matches a known DocumentTypeName.
func (d DocumentTypeName) IsValid() bool {
	for _, candidate := range validDocumentTypeNames {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDocumentTypeName converts raw input into a DocumentTypeName.
func ParseDocumentTypeName(value string) (DocumentTypeName, error) {
	for _, candidate := range validDocumentTypeNames {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid document type %q", value)
}
