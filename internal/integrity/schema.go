package integrity

// FieldType tags the declared type of one factory-master column for the
// datatype rule.
type FieldType string

const (
	TypeString FieldType = "string"
	TypeDate   FieldType = "date"
)

// FieldRule is one entry of the static validation table: declared type,
// whether the column is part of the natural key (and therefore required),
// and the maximum length for string columns (0 means unbounded).
type FieldRule struct {
	Name      string
	Type      FieldType
	Required  bool
	MaxLength int
}

// factoryRules mirrors the m_koujyou column declarations. Order matters:
// violations are reported in table order, keys first.
var factoryRules = []FieldRule{
	{Name: "previous_factory_code", Type: TypeString, Required: true, MaxLength: 4},
	{Name: "company_code", Type: TypeString, Required: true, MaxLength: 4},
	{Name: "product_factory_code", Type: TypeString, Required: true, MaxLength: 4},
	{Name: "start_operation_date", Type: TypeDate, Required: true},
	{Name: "end_operation_date", Type: TypeDate, Required: true},
	{Name: "previous_factory_name", Type: TypeString, MaxLength: 100},
	{Name: "product_factory_name", Type: TypeString, MaxLength: 100},
	{Name: "material_department_code", Type: TypeString, MaxLength: 4},
	{Name: "environmental_information", Type: TypeString, MaxLength: 100},
	{Name: "authentication_flag", Type: TypeString, MaxLength: 100},
	{Name: "group_corporate_code", Type: TypeString, MaxLength: 4},
	{Name: "integration_pattern", Type: TypeString, MaxLength: 100},
	{Name: "hulftid", Type: TypeString, MaxLength: 100},
}
