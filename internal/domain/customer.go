package domain

import "time"

// Customer is one row of the customer master (cm_custom_mst), keyed by
// corporation, customer code and effective-from date.
type Customer struct {
	CorporateCd string `gorm:"size:7;primaryKey;column:corporate_cd" json:"corporate_cd"`
	TokuCd      string `gorm:"size:4;primaryKey;column:toku_cd" json:"toku_cd"`
	TyDateFrom  Date   `gorm:"primaryKey;column:ty_date_from" json:"ty_date_from"`

	TyDateTo   *Date   `gorm:"column:ty_date_to" json:"ty_date_to"`
	TokuName   string  `gorm:"size:40;not null;column:toku_name" json:"toku_name"`
	TokuAbbr   *string `gorm:"size:20;column:toku_abbr" json:"toku_abbr"`
	OldTokuCd1 *string `gorm:"size:4;column:old_toku_cd1" json:"old_toku_cd1"`
	OldTokuCd2 *string `gorm:"size:4;column:old_toku_cd2" json:"old_toku_cd2"`
	OldTokuCd3 *string `gorm:"size:4;column:old_toku_cd3" json:"old_toku_cd3"`
	CountryCd  string  `gorm:"size:2;not null;default:JP;column:country_cd" json:"country_cd"`
	CurrencyCd string  `gorm:"size:3;not null;default:JPY;column:currency_cd" json:"currency_cd"`

	CrtCorporateCd string    `gorm:"size:7;not null;column:crt_corporate_cd" json:"crt_corporate_cd"`
	CrtUserID      string    `gorm:"size:20;not null;column:crt_user_id" json:"crt_user_id"`
	CrtDtime       time.Time `gorm:"autoCreateTime;column:crt_dtime" json:"crt_dtime"`
	CrtPg          string    `gorm:"size:20;not null;column:crt_pg" json:"crt_pg"`
	UpdCorporateCd string    `gorm:"size:7;not null;column:upd_corporate_cd" json:"upd_corporate_cd"`
	UpdUserID      string    `gorm:"size:20;not null;column:upd_user_id" json:"upd_user_id"`
	UpdDtime       time.Time `gorm:"autoUpdateTime;column:upd_dtime" json:"upd_dtime"`
	UpdPg          string    `gorm:"size:20;not null;column:upd_pg" json:"upd_pg"`
}

func (Customer) TableName() string { return "cm_custom_mst" }

type CustomerKey struct {
	CorporateCd string `json:"corporate_cd"`
	TokuCd      string `json:"toku_cd"`
	TyDateFrom  Date   `json:"ty_date_from"`
}

func (c *Customer) Key() CustomerKey {
	return CustomerKey{CorporateCd: c.CorporateCd, TokuCd: c.TokuCd, TyDateFrom: c.TyDateFrom}
}

// CustomerUpdate carries the non-key attributes of a customer mutation.
// Omitted fields stay untouched on merge.
type CustomerUpdate struct {
	TyDateTo   *Date   `json:"ty_date_to"`
	TokuName   *string `json:"toku_name"`
	TokuAbbr   *string `json:"toku_abbr"`
	OldTokuCd1 *string `json:"old_toku_cd1"`
	OldTokuCd2 *string `json:"old_toku_cd2"`
	OldTokuCd3 *string `json:"old_toku_cd3"`
	CountryCd  *string `json:"country_cd"`
	CurrencyCd *string `json:"currency_cd"`

	CrtCorporateCd *string `json:"crt_corporate_cd"`
	CrtUserID      *string `json:"crt_user_id"`
	CrtPg          *string `json:"crt_pg"`
	UpdCorporateCd *string `json:"upd_corporate_cd"`
	UpdUserID      *string `json:"upd_user_id"`
	UpdPg          *string `json:"upd_pg"`
}

// CustomerRecord is one caller-supplied customer mutation carrying its own
// key, used by single create and the batch endpoints.
type CustomerRecord struct {
	CorporateCd string `json:"corporate_cd" binding:"required,max=7"`
	TokuCd      string `json:"toku_cd" binding:"required,max=4"`
	TyDateFrom  Date   `json:"ty_date_from" binding:"required"`

	CustomerUpdate
}

func (r CustomerRecord) Key() CustomerKey {
	return CustomerKey{CorporateCd: r.CorporateCd, TokuCd: r.TokuCd, TyDateFrom: r.TyDateFrom}
}

func (r CustomerRecord) NewCustomer() *Customer {
	c := &Customer{
		CorporateCd: r.CorporateCd,
		TokuCd:      r.TokuCd,
		TyDateFrom:  r.TyDateFrom,
		CountryCd:   "JP",
		CurrencyCd:  "JPY",
	}
	r.CustomerUpdate.ApplyTo(c)
	return c
}

func (r CustomerRecord) ApplyTo(c *Customer) {
	r.CustomerUpdate.ApplyTo(c)
}

func (r CustomerUpdate) ApplyTo(c *Customer) {
	if r.TyDateTo != nil {
		c.TyDateTo = r.TyDateTo
	}
	if r.TokuName != nil {
		c.TokuName = *r.TokuName
	}
	if r.TokuAbbr != nil {
		c.TokuAbbr = r.TokuAbbr
	}
	if r.OldTokuCd1 != nil {
		c.OldTokuCd1 = r.OldTokuCd1
	}
	if r.OldTokuCd2 != nil {
		c.OldTokuCd2 = r.OldTokuCd2
	}
	if r.OldTokuCd3 != nil {
		c.OldTokuCd3 = r.OldTokuCd3
	}
	if r.CountryCd != nil {
		c.CountryCd = *r.CountryCd
	}
	if r.CurrencyCd != nil {
		c.CurrencyCd = *r.CurrencyCd
	}
	if r.CrtCorporateCd != nil {
		c.CrtCorporateCd = *r.CrtCorporateCd
	}
	if r.CrtUserID != nil {
		c.CrtUserID = *r.CrtUserID
	}
	if r.CrtPg != nil {
		c.CrtPg = *r.CrtPg
	}
	if r.UpdCorporateCd != nil {
		c.UpdCorporateCd = *r.UpdCorporateCd
	}
	if r.UpdUserID != nil {
		c.UpdUserID = *r.UpdUserID
	}
	if r.UpdPg != nil {
		c.UpdPg = *r.UpdPg
	}
}
