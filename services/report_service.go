package services

import (
	"errors"
	"log"
	"math/rand"
	"unicode/utf8"

	"gorm.io/gorm"

	"dormwatch/config"
	"dormwatch/db"
	apiError "dormwatch/errors"
	"dormwatch/models"
)

// ReportService interface
type ReportService interface {
	CreateReport(request *models.CreateReportRequest) (*models.Report, *apiError.Error)
	GetAllReports() ([]models.ReportResponse, *apiError.Error)
	LikeReport(userID uint, reportID uint) (int, *apiError.Error)
}

// reportService struct
type reportService struct {
	Config     *config.Config
	reportRepo db.ReportRepository
	adjectives []string
	animals    []string
}

// NewReportService creates a new instance of ReportService. The nickname
// pools are read from config once here, not on every request.
func NewReportService(reportRepo db.ReportRepository, conf *config.Config) ReportService {
	return &reportService{
		Config:     conf,
		reportRepo: reportRepo,
		adjectives: conf.AdjectivePool(),
		animals:    conf.AnimalPool(),
	}
}

func (r *reportService) CreateReport(request *models.CreateReportRequest) (*models.Report, *apiError.Error) {
	if err := models.ValidateWhiteSpaces(request); err != nil {
		log.Printf("CreateReport error trimming input: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	if request.Room == "" || request.Content == "" {
		return nil, apiError.InvalidInput("room and content required")
	}
	if utf8.RuneCountInString(request.Room) > 20 || utf8.RuneCountInString(request.Content) > 1000 {
		return nil, apiError.InvalidInput("input too long")
	}

	report := &models.Report{
		Room:     request.Room,
		Content:  request.Content,
		Nickname: r.generateNickname(),
		Likes:    0,
		Status:   "pending",
	}

	report, err := r.reportRepo.CreateReport(report)
	if err != nil {
		log.Printf("CreateReport error persisting report: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	return report, nil
}

func (r *reportService) GetAllReports() ([]models.ReportResponse, *apiError.Error) {
	reports, err := r.reportRepo.GetAllReports()
	if err != nil {
		log.Printf("GetAllReports error: %v", err)
		return nil, apiError.ErrInternalServerError
	}

	result := make([]models.ReportResponse, 0, len(reports))
	for i := range reports {
		result = append(result, reports[i].EscapedResponse())
	}
	return result, nil
}

func (r *reportService) LikeReport(userID uint, reportID uint) (int, *apiError.Error) {
	newCount, err := r.reportRepo.LikeReport(userID, reportID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return 0, apiError.ErrReportNotFound
		case errors.Is(err, db.ErrDuplicateLike):
			return 0, apiError.ErrAlreadyLiked
		default:
			log.Printf("LikeReport error: %v", err)
			return 0, apiError.ErrInternalServerError
		}
	}
	return newCount, nil
}

// generateNickname picks one adjective and one animal independently from the
// configured pools. Never client-supplied, which is what prevents spoofing.
func (r *reportService) generateNickname() string {
	adj := r.adjectives[rand.Intn(len(r.adjectives))]
	animal := r.animals[rand.Intn(len(r.animals))]
	return adj + animal
}
