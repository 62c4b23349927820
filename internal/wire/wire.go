package wire

import (
	"Folio/internal/api"
	"Folio/internal/api/config"
	"Folio/internal/api/handler"
	"Folio/internal/job"
	"Folio/internal/pkg/cron"
	"Folio/internal/pkg/kafka"
	"Folio/internal/repository"
	"Folio/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router    *gin.Engine
	DB        *gorm.DB
	Publisher kafka.DocumentPublisher
	CronMgr   *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	publisher, err := kafka.NewDocumentPublisher(cfg.Kafka)
	if err != nil {
		return nil, err
	}
	return buildWithPublisher(db, cfg, publisher), nil
}

func buildWithPublisher(db *gorm.DB, cfg *config.Config, publisher kafka.DocumentPublisher) *ApplicationContainer {
	tagRepo := repository.NewTagRepository(db)
	documentRepo := repository.NewDocumentRepository(db, tagRepo)

	hotKeywordService := service.NewHotKeywordService()
	documentService := service.NewDocumentService(documentRepo, tagRepo, publisher, hotKeywordService)

	handlers := &api.HandlersGroup{
		DocumentHandler:   handler.NewDocumentHandler(documentService),
		HotKeywordHandler: handler.NewHotKeywordHandler(hotKeywordService),
	}

	router := api.SetupRouter(handlers, cfg)

	trimJob := job.NewHotKeywordTrimJob(hotKeywordService, cfg.HotKeyword.Keep)
	cronMgr := cron.NewCronManager(cfg.HotKeyword.TrimSpec, trimJob)

	return &ApplicationContainer{
		Router:    router,
		DB:        db,
		Publisher: publisher,
		CronMgr:   cronMgr,
	}
}
