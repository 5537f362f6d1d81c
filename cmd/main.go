package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/arunvel/fleet-office/internal/auth"
	"github.com/arunvel/fleet-office/internal/db"
	"github.com/arunvel/fleet-office/internal/handlers"
	"github.com/arunvel/fleet-office/internal/middleware"
	"github.com/arunvel/fleet-office/internal/models"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Info("Loaded environment from .env")
	}

	client, err := db.ConnectMongo()
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	log.Info("Connected to MongoDB")

	dbName := os.Getenv("MONGO_DB")
	if dbName == "" {
		dbName = "fleet_office"
	}
	database := client.Database(dbName)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.EnsureIndexes(ctx, database); err != nil {
		log.WithError(err).Fatal("Failed to create indexes")
	}

	authService, err := auth.NewService()
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}

	users := &db.MongoUserCollection{Collection: database.Collection("users")}
	cars := &db.MongoCarCollection{Collection: database.Collection("cars")}
	trips := &db.MongoTripCollection{Collection: database.Collection("trips")}
	bills := &db.MongoBillCollection{Collection: database.Collection("bills")}
	payments := &db.MongoPaymentCollection{Collection: database.Collection("payments")}
	advances := &db.MongoAdvanceCollection{Collection: database.Collection("advances")}
	leaves := &db.MongoLeaveCollection{Collection: database.Collection("leaves")}
	bata := &db.MongoBataConfigCollection{Collection: database.Collection("bataconfig")}

	if err := seedDefaults(ctx, authService, users, bata); err != nil {
		log.WithError(err).Fatal("Failed to seed defaults")
	}

	authHandler := handlers.NewAuthHandler(authService, users)
	carHandler := handlers.NewCarHandler(cars)
	tripHandler := handlers.NewTripHandler(trips, bills, bata)
	billHandler := handlers.NewBillHandler(bills)
	paymentHandler := handlers.NewPaymentHandler(payments, bills)
	advanceHandler := handlers.NewAdvanceHandler(advances)
	leaveHandler := handlers.NewLeaveHandler(leaves)
	bataHandler := handlers.NewBataConfigHandler(bata)

	authMW := middleware.NewAuthMiddleware(authService)
	staff := authMW.RequireRole(models.RoleOwner, models.RoleEmployee)
	owner := authMW.RequireRole(models.RoleOwner)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("POST /api/auth/register", staff(http.HandlerFunc(authHandler.Register)))
	mux.HandleFunc("GET /api/auth/me", authHandler.Me)
	mux.HandleFunc("GET /api/auth/users", authHandler.ListUsers)
	mux.HandleFunc("GET /api/auth/users/{id}", authHandler.GetUser)
	mux.Handle("DELETE /api/auth/users/{id}", owner(http.HandlerFunc(authHandler.DeleteUser)))

	mux.HandleFunc("GET /api/cars", carHandler.List)
	mux.Handle("POST /api/cars", staff(http.HandlerFunc(carHandler.Create)))
	mux.HandleFunc("GET /api/cars/{id}", carHandler.Get)
	mux.Handle("PUT /api/cars/{id}", staff(http.HandlerFunc(carHandler.Update)))
	mux.Handle("DELETE /api/cars/{id}", owner(http.HandlerFunc(carHandler.Delete)))

	mux.HandleFunc("GET /api/trips", tripHandler.List)
	mux.Handle("POST /api/trips", staff(http.HandlerFunc(tripHandler.Create)))
	mux.HandleFunc("GET /api/trips/{id}", tripHandler.Get)
	mux.HandleFunc("PUT /api/trips/{id}", tripHandler.Update)
	mux.HandleFunc("PUT /api/trips/{id}/start", tripHandler.Start)
	mux.HandleFunc("PUT /api/trips/{id}/end", tripHandler.End)
	mux.Handle("DELETE /api/trips/{id}", owner(http.HandlerFunc(tripHandler.Delete)))

	mux.HandleFunc("GET /api/bills", billHandler.List)
	mux.HandleFunc("GET /api/bills/{id}", billHandler.Get)
	mux.Handle("PUT /api/bills/{id}", staff(http.HandlerFunc(billHandler.Update)))
	mux.Handle("DELETE /api/bills/{id}", owner(http.HandlerFunc(billHandler.Delete)))

	mux.HandleFunc("GET /api/payments", paymentHandler.List)
	mux.Handle("POST /api/payments", staff(http.HandlerFunc(paymentHandler.Create)))
	mux.Handle("DELETE /api/payments/{id}", owner(http.HandlerFunc(paymentHandler.Delete)))

	mux.HandleFunc("GET /api/advances", advanceHandler.List)
	mux.HandleFunc("POST /api/advances", advanceHandler.Create)
	mux.HandleFunc("DELETE /api/advances/{id}", advanceHandler.Delete)

	mux.HandleFunc("GET /api/leaves", leaveHandler.List)
	mux.HandleFunc("POST /api/leaves", leaveHandler.Create)
	mux.HandleFunc("PUT /api/leaves/{id}", leaveHandler.Update)
	mux.Handle("PUT /api/leaves/{id}/approve", staff(http.HandlerFunc(leaveHandler.Approve)))
	mux.Handle("PUT /api/leaves/{id}/reject", staff(http.HandlerFunc(leaveHandler.Reject)))
	mux.Handle("DELETE /api/leaves/{id}", owner(http.HandlerFunc(leaveHandler.Delete)))

	mux.HandleFunc("GET /api/bata-config", bataHandler.List)
	mux.Handle("PUT /api/bata-config/{vehicleType}", owner(http.HandlerFunc(bataHandler.Upsert)))

	rateLimiter := middleware.NewRateLimitMiddleware()
	handler := middleware.CORS(rateLimiter.RateLimit(300, 60)(authMW.Authenticate(mux)))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("HTTP server listening")
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

// seedDefaults creates the initial owner account and the default bata
// rates when the database is empty, so a fresh install is usable
// immediately.
func seedDefaults(ctx context.Context, authService *auth.Service, users db.UserCollection, bata db.BataConfigCollection) error {
	userCount, err := users.CountUsers(ctx)
	if err != nil {
		return err
	}
	if userCount == 0 {
		passwordHash, err := authService.HashPassword("owner123")
		if err != nil {
			return err
		}
		err = users.InsertUser(ctx, models.User{
			ID:           primitive.NewObjectID(),
			Name:         "Admin Owner",
			Phone:        "9999999999",
			Username:     "owner",
			PasswordHash: passwordHash,
			Role:         models.RoleOwner,
		})
		if err != nil {
			return err
		}
		log.Info("Default owner account created (owner / owner123)")
	}

	bataCount, err := bata.CountBataConfigs(ctx)
	if err != nil {
		return err
	}
	if bataCount == 0 {
		if err := bata.InsertBataConfigs(ctx, models.DefaultBataConfigs); err != nil {
			return err
		}
		log.Info("Default bata config seeded")
	}

	return nil
}
