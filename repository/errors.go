package repository

import "gorm.io/gorm"

// notFound turns an empty single-row result into gorm.ErrRecordNotFound so
// callers can treat Raw scans like First.
func notFound(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
