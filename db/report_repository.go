package db

import (
	"log"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"dormwatch/models"
)

// ErrDuplicateLike is returned when a user likes a report they already liked.
var ErrDuplicateLike = errors.New("user has already liked this report")

type ReportRepository interface {
	CreateReport(report *models.Report) (*models.Report, error)
	GetAllReports() ([]models.Report, error)
	FindReportByID(id uint) (*models.Report, error)
	LikeReport(userID uint, reportID uint) (int, error)
}

type reportRepo struct {
	DB *gorm.DB
}

func NewReportRepo(db *GormDB) ReportRepository {
	return &reportRepo{db.DB}
}

func (r *reportRepo) CreateReport(report *models.Report) (*models.Report, error) {
	if err := r.DB.Create(report).Error; err != nil {
		log.Printf("CreateReport error: %v", err)
		return nil, errors.Wrap(err, "could not create report")
	}
	return report, nil
}

func (r *reportRepo) GetAllReports() ([]models.Report, error) {
	var reports []models.Report
	err := r.DB.Order("created_at DESC").Find(&reports).Error
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch reports")
	}
	return reports, nil
}

func (r *reportRepo) FindReportByID(id uint) (*models.Report, error) {
	var report models.Report
	if err := r.DB.First(&report, id).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// LikeReport inserts the like row and bumps the report counter in a single
// transaction. The increment uses a SQL expression so two concurrent likes by
// different users are both reflected; a duplicate by the same user is stopped
// either by the pre-check or, if it races past it, by the unique index on
// (user_id, report_id). Returns the new like count.
func (r *reportRepo) LikeReport(userID uint, reportID uint) (int, error) {
	var newCount int

	err := r.DB.Transaction(func(tx *gorm.DB) error {
		var report models.Report
		if err := tx.First(&report, reportID).Error; err != nil {
			return err
		}

		var existing models.ReportLike
		err := tx.Where("user_id = ? AND report_id = ?", userID, reportID).First(&existing).Error
		if err == nil {
			return ErrDuplicateLike
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		like := models.ReportLike{UserID: userID, ReportID: reportID}
		if err := tx.Create(&like).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicateLike
			}
			return err
		}

		if err := tx.Model(&models.Report{}).Where("id = ?", reportID).
			UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error; err != nil {
			return err
		}

		if err := tx.First(&report, reportID).Error; err != nil {
			return err
		}
		newCount = report.Likes
		return nil
	})
	if err != nil {
		return 0, err
	}

	return newCount, nil
}
