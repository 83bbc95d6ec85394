package migrations

import (
	"context"
	"log"

	"MediBook/constants"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// $near proximity search needs a 2dsphere index on the doctor location.
func AddDoctorLocationIndex() {
	ctx := context.Background()
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "location", Value: "2dsphere"},
		},
	}
	name, err := db.DB.Collection(constants.DoctorCollection).Indexes().CreateOne(ctx, model)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Printf("Migration applied: index %s created\n", name)
}
