package main

import (
	"errors"
	"log"
	"net/http"

	"postit-board/config"
	"postit-board/db"
	"postit-board/handlers"
	appmw "postit-board/middleware"
	"postit-board/store"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}

	database, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatal("DB connection error: ", err)
	}

	admins := store.NewAdminStore(database)
	notes := store.NewNoteStore(database)

	// provision the configured admin on first boot
	if cfg.AdminUsername != "" && cfg.AdminPasswordHash != "" {
		if _, err := admins.Create(cfg.AdminUsername, cfg.AdminPasswordHash); err != nil && !errors.Is(err, store.ErrConflict) {
			log.Fatal("Admin seed error: ", err)
		}
	}

	authHandler := handlers.NewAuthHandler(admins, cfg.JWTSecret)
	noteHandler := handlers.NewNoteHandler(notes)

	r := chi.NewRouter()

	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/api/admin/login", authHandler.Login)

	r.Group(func(r chi.Router) {
		r.Use(appmw.RequireAuth(cfg.JWTSecret))
		r.Post("/api/admin", authHandler.CreateAdmin)
		r.Get("/api/notes", noteHandler.GetNotes)
		r.Post("/api/notes", noteHandler.CreateNote)
		r.Put("/api/notes/{id}", noteHandler.UpdateNote)
		r.Delete("/api/notes/{id}", noteHandler.DeleteNote)
	})

	log.Println("Server running on http://localhost:" + cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
