package model

import (
	"fmt"
)

// DataTypeDefXsd type of DataTypeDefXsd
type DataTypeDefXsd string

// List of DataTypeDefXsd
//
//nolint:all
const (
	DATATYPEDEFXSD_ANY_URI              DataTypeDefXsd = "xs:anyURI"
	DATATYPEDEFXSD_BASE64_BINARY        DataTypeDefXsd = "xs:base64Binary"
	DATATYPEDEFXSD_BOOLEAN              DataTypeDefXsd = "xs:boolean"
	DATATYPEDEFXSD_BYTE                 DataTypeDefXsd = "xs:byte"
	DATATYPEDEFXSD_DATE                 DataTypeDefXsd = "xs:date"
	DATATYPEDEFXSD_DATE_TIME            DataTypeDefXsd = "xs:dateTime"
	DATATYPEDEFXSD_DECIMAL              DataTypeDefXsd = "xs:decimal"
	DATATYPEDEFXSD_DOUBLE               DataTypeDefXsd = "xs:double"
	DATATYPEDEFXSD_DURATION             DataTypeDefXsd = "xs:duration"
	DATATYPEDEFXSD_FLOAT                DataTypeDefXsd = "xs:float"
	DATATYPEDEFXSD_G_DAY                DataTypeDefXsd = "xs:gDay"
	DATATYPEDEFXSD_G_MONTH              DataTypeDefXsd = "xs:gMonth"
	DATATYPEDEFXSD_G_MONTH_DAY          DataTypeDefXsd = "xs:gMonthDay"
	DATATYPEDEFXSD_G_YEAR               DataTypeDefXsd = "xs:gYear"
	DATATYPEDEFXSD_G_YEAR_MONTH         DataTypeDefXsd = "xs:gYearMonth"
	DATATYPEDEFXSD_HEX_BINARY           DataTypeDefXsd = "xs:hexBinary"
	DATATYPEDEFXSD_INT                  DataTypeDefXsd = "xs:int"
	DATATYPEDEFXSD_INTEGER              DataTypeDefXsd = "xs:integer"
	DATATYPEDEFXSD_LONG                 DataTypeDefXsd = "xs:long"
	DATATYPEDEFXSD_NEGATIVE_INTEGER     DataTypeDefXsd = "xs:negativeInteger"
	DATATYPEDEFXSD_NON_NEGATIVE_INTEGER DataTypeDefXsd = "xs:nonNegativeInteger"
	DATATYPEDEFXSD_NON_POSITIVE_INTEGER DataTypeDefXsd = "xs:nonPositiveInteger"
	DATATYPEDEFXSD_POSITIVE_INTEGER     DataTypeDefXsd = "xs:positiveInteger"
	DATATYPEDEFXSD_SHORT                DataTypeDefXsd = "xs:short"
	DATATYPEDEFXSD_STRING               DataTypeDefXsd = "xs:string"
	DATATYPEDEFXSD_TIME                 DataTypeDefXsd = "xs:time"
	DATATYPEDEFXSD_UNSIGNED_BYTE        DataTypeDefXsd = "xs:unsignedByte"
	DATATYPEDEFXSD_UNSIGNED_INT         DataTypeDefXsd = "xs:unsignedInt"
	DATATYPEDEFXSD_UNSIGNED_LONG        DataTypeDefXsd = "xs:unsignedLong"
	DATATYPEDEFXSD_UNSIGNED_SHORT       DataTypeDefXsd = "xs:unsignedShort"
)

// AllowedDataTypeDefXsdEnumValues is all the allowed values of DataTypeDefXsd enum
var AllowedDataTypeDefXsdEnumValues = []DataTypeDefXsd{
	"xs:anyURI",
	"xs:base64Binary",
	"xs:boolean",
	"xs:byte",
	"xs:date",
	"xs:dateTime",
	"xs:decimal",
	"xs:double",
	"xs:duration",
	"xs:float",
	"xs:gDay",
	"xs:gMonth",
	"xs:gMonthDay",
	"xs:gYear",
	"xs:gYearMonth",
	"xs:hexBinary",
	"xs:int",
	"xs:integer",
	"xs:long",
	"xs:negativeInteger",
	"xs:nonNegativeInteger",
	"xs:nonPositiveInteger",
	"xs:positiveInteger",
	"xs:short",
	"xs:string",
	"xs:time",
	"xs:unsignedByte",
	"xs:unsignedInt",
	"xs:unsignedLong",
	"xs:unsignedShort",
}

var validDataTypeDefXsdEnumValues = func() map[DataTypeDefXsd]struct{} {
	m := make(map[DataTypeDefXsd]struct{}, len(AllowedDataTypeDefXsdEnumValues))
	for _, v := range AllowedDataTypeDefXsdEnumValues {
		m[v] = struct{}{}
	}
	return m
}()

// IsValid return true if the value is valid for the enum, false otherwise
func (v DataTypeDefXsd) IsValid() bool {
	_, ok := validDataTypeDefXsdEnumValues[v]
	return ok
}

// NewDataTypeDefXsdFromValue returns a valid DataTypeDefXsd for the value passed as
// argument, or an error if the value passed is not allowed by the enum
func NewDataTypeDefXsdFromValue(v string) (DataTypeDefXsd, error) {
	ev := DataTypeDefXsd(v)
	if ev.IsValid() {
		return ev, nil
	}
	return "", fmt.Errorf("invalid value '%v' for DataTypeDefXsd: valid values are %v", v, AllowedDataTypeDefXsdEnumValues)
}
