package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/mo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"qtbot/models"
)

// Collection holding one credential document per (slack_team_id,
// slack_user_id) pair.
const credentialsCollection = "tokens"

// MongoCredentialsRepository persists Qiita credentials in a MongoDB
// collection. Every operation dials its own connection and disconnects
// before returning, so no connection spans two calls and a fetch-then-act
// sequence is never atomic.
type MongoCredentialsRepository struct {
	mongoDBURL string
	dbName     string
}

func NewMongoCredentialsRepository(mongoDBURL, dbName string) *MongoCredentialsRepository {
	return &MongoCredentialsRepository{mongoDBURL: mongoDBURL, dbName: dbName}
}

func (r *MongoCredentialsRepository) collection(client *mongo.Client) *mongo.Collection {
	return client.Database(r.dbName).Collection(credentialsCollection)
}

// EnsureIndexes creates the unique compound index on
// (slack_team_id, slack_user_id). Called once at process start; with the
// index in place a duplicate insert is rejected by the store rather than
// silently overwriting.
func (r *MongoCredentialsRepository) EnsureIndexes(ctx context.Context) error {
	client, err := Connect(ctx, r.mongoDBURL)
	if err != nil {
		return fmt.Errorf("failed to connect for index creation: %w", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	_, err = r.collection(client).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "slack_team_id", Value: 1},
			{Key: "slack_user_id", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create credentials index: %w", err)
	}

	return nil
}

// GetCredentialByIdentity looks up the credential for a Slack identity.
// A missing document is an absent Option, never an error.
func (r *MongoCredentialsRepository) GetCredentialByIdentity(
	ctx context.Context,
	key models.CredentialKey,
) (mo.Option[*models.QiitaCredential], error) {
	client, err := Connect(ctx, r.mongoDBURL)
	if err != nil {
		return mo.None[*models.QiitaCredential](), fmt.Errorf("failed to connect to credential store: %w", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	filter := bson.M{"slack_team_id": key.SlackTeamID, "slack_user_id": key.SlackUserID}

	var credential models.QiitaCredential
	err = r.collection(client).FindOne(ctx, filter).Decode(&credential)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return mo.None[*models.QiitaCredential](), nil
	}
	if err != nil {
		return mo.None[*models.QiitaCredential](), fmt.Errorf("failed to get credential: %w", err)
	}

	return mo.Some(&credential), nil
}

// CreateCredential inserts a new credential document. Returns true only
// when exactly one document was inserted. Insert semantics, not upsert: a
// duplicate identity is rejected by the unique index and reported as
// false without an error.
func (r *MongoCredentialsRepository) CreateCredential(
	ctx context.Context,
	credential *models.QiitaCredential,
) (bool, error) {
	client, err := Connect(ctx, r.mongoDBURL)
	if err != nil {
		return false, fmt.Errorf("failed to connect to credential store: %w", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	result, err := r.collection(client).InsertOne(ctx, credential)
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert credential: %w", err)
	}

	return result.InsertedID != nil, nil
}

// UpdateCredentialTeam merges the selected team into the credential
// matched by key. Returns true only when exactly one document was
// modified; a merge producing identical content counts as failure
// (ModifiedCount semantics).
func (r *MongoCredentialsRepository) UpdateCredentialTeam(
	ctx context.Context,
	key models.CredentialKey,
	qiitaTeamURLName string,
) (bool, error) {
	client, err := Connect(ctx, r.mongoDBURL)
	if err != nil {
		return false, fmt.Errorf("failed to connect to credential store: %w", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	filter := bson.M{"slack_team_id": key.SlackTeamID, "slack_user_id": key.SlackUserID}
	update := bson.M{"$set": bson.M{"qiita_team_url_name": qiitaTeamURLName}}

	result, err := r.collection(client).UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to update credential: %w", err)
	}

	return result.ModifiedCount == 1, nil
}
