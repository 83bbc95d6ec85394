package migrations

import (
	"context"
	"log"

	"MediBook/constants"

	db "github.com/KanapuramVaishnavi/Core/config/db"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// One rating per (userId, doctorId); a second insert fails with a
// duplicate key error that the service converts to a conflict.
func AddRatingUniqueIndex() {
	ctx := context.Background()
	model := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "doctorId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	name, err := db.DB.Collection(constants.RatingCollection).Indexes().CreateOne(ctx, model)
	if err != nil {
		log.Fatal("Migration failed:", err)
	}
	log.Printf("Migration applied: index %s created\n", name)
}
