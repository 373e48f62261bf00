package connection

import (
	"context"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	authcontroller "taskdesk/controller/auth"
	"taskdesk/controller/recurring"
	"taskdesk/services"
	"taskdesk/store"
)

func StartServer() {
	if err := godotenv.Load(); err != nil {
		// Fine in production; env comes from the process environment there.
		os.Stderr.WriteString("warning: no .env file found\n")
	}
	log := NewLogger()

	ctx := context.Background()
	firestoreClient, err := FBConnection(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize Firestore client")
	}
	log.Info().Msg("Firestore connection successful")

	svc := services.NewRecurringTaskService(
		store.NewFirestoreTaskStore(firestoreClient),
		store.NewFirestoreCompletionStore(firestoreClient),
		log,
	)

	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Api is running!"})
	})

	authcontroller.SignInController(router, firestoreClient)
	authcontroller.SignUpController(router, firestoreClient)
	authcontroller.RefreshTokenController(router, firestoreClient)
	recurring.RecurringController(router, firestoreClient, svc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Info().Str("port", port).Msg("server listening")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
