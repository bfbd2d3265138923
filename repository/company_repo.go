package repository

import "distrisur/models"

type CompanyInfoRepository interface {
	SaveCompanyInfo(info *models.CompanyInfo) error
	GetCompanyInfo() (*models.CompanyInfo, error)
}
