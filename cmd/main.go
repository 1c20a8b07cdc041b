package main

import (
	"context"
	"log"

	"studio-booking-service/config"
	bookinghandler "studio-booking-service/internal/module/booking/handler"
	bookingrepositories "studio-booking-service/internal/module/booking/repositories"
	bookingusecases "studio-booking-service/internal/module/booking/usecases"
	cataloghandler "studio-booking-service/internal/module/catalog/handler"
	catalogrepositories "studio-booking-service/internal/module/catalog/repositories"
	catalogusecases "studio-booking-service/internal/module/catalog/usecases"
	leadhandler "studio-booking-service/internal/module/lead/handler"
	leadrepositories "studio-booking-service/internal/module/lead/repositories"
	leadusecases "studio-booking-service/internal/module/lead/usecases"
	wizardhandler "studio-booking-service/internal/module/wizard/handler"
	wizardrepositories "studio-booking-service/internal/module/wizard/repositories"
	wizardusecases "studio-booking-service/internal/module/wizard/usecases"
	"studio-booking-service/internal/pkg/database"
	"studio-booking-service/internal/pkg/http"
	"studio-booking-service/internal/pkg/httpclient"
	log_internal "studio-booking-service/internal/pkg/log"
	"studio-booking-service/internal/pkg/messagestream"
	"studio-booking-service/internal/pkg/middleware"
	redis_internal "studio-booking-service/internal/pkg/redis"
	"studio-booking-service/internal/pkg/scheduler"
	router "studio-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/go-redsync/redsync/v4"
	redsyncpool "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters, runScheduler := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	go runScheduler()

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router, func()) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redis := redis_internal.SetupClient(&cfg.Redis)
	rs := redsync.New(redsyncpool.NewPool(redis))
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	handlerLogger := log_internal.Setup()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sched := &scheduler.Scheduler{Log: logger}
	asynqClient := sched.InitClient(&cfg.Redis)

	validator := validator.New()

	// catalog
	catalogRepo := catalogrepositories.New(db, logger, redis, cfg.Wizard.CatalogCacheTTL)
	catalogUsecase := catalogusecases.New(catalogRepo, logger)
	catalogHandler := cataloghandler.CatalogHandler{
		Log:       handlerLogger,
		Validator: validator,
		Usecase:   catalogUsecase,
	}

	// lead
	leadRepo := leadrepositories.New(db, logger, rs)
	leadUsecase := leadusecases.New(leadRepo, logger, publisher)
	leadHandler := leadhandler.LeadHandler{
		Log:       handlerLogger,
		Validator: validator,
		Usecase:   leadUsecase,
		Publish:   publisher,
	}

	// booking
	bookingRepo := bookingrepositories.New(db, logger)
	bookingUsecase := bookingusecases.New(bookingRepo, logger, publisher)
	bookingHandler := bookinghandler.BookingHandler{
		Log:       handlerLogger,
		Validator: validator,
		Usecase:   bookingUsecase,
	}

	// wizard
	wizardRepo := wizardrepositories.New(redis, logger, httpClient, &cfg.IdentityService, asynqClient, cfg.Wizard.SessionTTL)
	wizardUsecase := wizardusecases.New(wizardRepo, logger, publisher, catalogUsecase, bookingUsecase, &cfg.Wizard)
	wizardHandler := wizardhandler.WizardHandler{
		Log:       handlerLogger,
		Validator: validator,
		Usecase:   wizardUsecase,
	}

	middleware := middleware.Middleware{
		Log:  handlerLogger,
		Repo: wizardRepo,
	}

	var messageRouters []*message.Router

	consumeLeadTrackingRouter, err := messagestream.NewRouter(publisher, messagestream.TopicLeadTrackingPoisoned, "lead_tracking_handler", messagestream.TopicLeadTracking, subscriber, leadHandler.ConsumeLeadTrackingQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_lead_tracking router", err)
	}

	consumeBookingCreatedRouter, err := messagestream.NewRouter(publisher, messagestream.TopicBookingCreatedPoisoned, "booking_created_handler", messagestream.TopicBookingCreated, subscriber, leadHandler.ConsumeBookingCreatedQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_booking_created router", err)
	}

	messageRouters = append(messageRouters, consumeLeadTrackingRouter, consumeBookingCreatedRouter)

	runScheduler := func() {
		go sched.StartMonitoring(&cfg.Redis)
		sched.StartHandler(
			&cfg.Redis,
			[]string{scheduler.TypeMarkLeadAbandoned},
			[]func(ctx context.Context, t *asynq.Task) error{leadHandler.SetLeadAbandoned},
		)
	}

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &wizardHandler, &catalogHandler, &leadHandler, &bookingHandler, &middleware)

	return r, messageRouters, runScheduler

}
