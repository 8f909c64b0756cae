package domain

// Factory is one row of the factory master (m_koujyou). The primary key is
// the full 5-tuple of both factory codes, the company code and the operation
// period boundaries.
type Factory struct {
	PreviousFactoryCode string `gorm:"size:4;primaryKey;column:previous_factory_code" json:"previous_factory_code"`
	CompanyCode         string `gorm:"size:4;primaryKey;column:company_code" json:"company_code"`
	ProductFactoryCode  string `gorm:"size:4;primaryKey;column:product_factory_code" json:"product_factory_code"`
	StartOperationDate  Date   `gorm:"primaryKey;column:start_operation_date" json:"start_operation_date"`
	EndOperationDate    Date   `gorm:"primaryKey;column:end_operation_date" json:"end_operation_date"`

	PreviousFactoryName      *string `gorm:"size:100;column:previous_factory_name" json:"previous_factory_name"`
	ProductFactoryName       *string `gorm:"size:100;column:product_factory_name" json:"product_factory_name"`
	MaterialDepartmentCode   *string `gorm:"size:4;column:material_department_code" json:"material_department_code"`
	EnvironmentalInformation *string `gorm:"size:100;column:environmental_information" json:"environmental_information"`
	AuthenticationFlag       *string `gorm:"size:100;column:authentication_flag" json:"authentication_flag"`
	GroupCorporateCode       *string `gorm:"size:4;column:group_corporate_code" json:"group_corporate_code"`
	IntegrationPattern       *string `gorm:"size:100;column:integration_pattern" json:"integration_pattern"`
	Hulftid                  *string `gorm:"size:100;column:hulftid" json:"hulftid"`
}

func (Factory) TableName() string { return "m_koujyou" }

// FactoryKey identifies one factory row.
type FactoryKey struct {
	PreviousFactoryCode string `json:"previous_factory_code"`
	CompanyCode         string `json:"company_code"`
	ProductFactoryCode  string `json:"product_factory_code"`
	StartOperationDate  Date   `json:"start_operation_date"`
	EndOperationDate    Date   `json:"end_operation_date"`
}

// FactoryRecord is one caller-supplied factory mutation. Optional attributes
// are pointers so an omitted field can be told apart from an explicit value
// during merge updates.
type FactoryRecord struct {
	CompanyCode         string `json:"company_code" binding:"required"`
	PreviousFactoryCode string `json:"previous_factory_code" binding:"required"`
	ProductFactoryCode  string `json:"product_factory_code" binding:"required"`
	StartOperationDate  Date   `json:"start_operation_date" binding:"required"`
	EndOperationDate    Date   `json:"end_operation_date" binding:"required"`

	PreviousFactoryName      *string `json:"previous_factory_name"`
	ProductFactoryName       *string `json:"product_factory_name"`
	MaterialDepartmentCode   *string `json:"material_department_code"`
	EnvironmentalInformation *string `json:"environmental_information"`
	AuthenticationFlag       *string `json:"authentication_flag"`
	GroupCorporateCode       *string `json:"group_corporate_code"`
	IntegrationPattern       *string `json:"integration_pattern"`
	Hulftid                  *string `json:"hulftid"`
}

func (r FactoryRecord) Key() FactoryKey {
	return FactoryKey{
		PreviousFactoryCode: r.PreviousFactoryCode,
		CompanyCode:         r.CompanyCode,
		ProductFactoryCode:  r.ProductFactoryCode,
		StartOperationDate:  r.StartOperationDate,
		EndOperationDate:    r.EndOperationDate,
	}
}

func (f *Factory) Key() FactoryKey {
	return FactoryKey{
		PreviousFactoryCode: f.PreviousFactoryCode,
		CompanyCode:         f.CompanyCode,
		ProductFactoryCode:  f.ProductFactoryCode,
		StartOperationDate:  f.StartOperationDate,
		EndOperationDate:    f.EndOperationDate,
	}
}

// NewFactory builds a row from a mutation record.
func (r FactoryRecord) NewFactory() *Factory {
	f := &Factory{
		PreviousFactoryCode: r.PreviousFactoryCode,
		CompanyCode:         r.CompanyCode,
		ProductFactoryCode:  r.ProductFactoryCode,
		StartOperationDate:  r.StartOperationDate,
		EndOperationDate:    r.EndOperationDate,
	}
	r.mergeInto(f)
	return f
}

// ApplyTo merges the supplied attributes onto an existing row, leaving
// omitted fields untouched.
func (r FactoryRecord) ApplyTo(f *Factory) {
	r.mergeInto(f)
}

func (r FactoryRecord) mergeInto(f *Factory) {
	if r.PreviousFactoryName != nil {
		f.PreviousFactoryName = r.PreviousFactoryName
	}
	if r.ProductFactoryName != nil {
		f.ProductFactoryName = r.ProductFactoryName
	}
	if r.MaterialDepartmentCode != nil {
		f.MaterialDepartmentCode = r.MaterialDepartmentCode
	}
	if r.EnvironmentalInformation != nil {
		f.EnvironmentalInformation = r.EnvironmentalInformation
	}
	if r.AuthenticationFlag != nil {
		f.AuthenticationFlag = r.AuthenticationFlag
	}
	if r.GroupCorporateCode != nil {
		f.GroupCorporateCode = r.GroupCorporateCode
	}
	if r.IntegrationPattern != nil {
		f.IntegrationPattern = r.IntegrationPattern
	}
	if r.Hulftid != nil {
		f.Hulftid = r.Hulftid
	}
}
