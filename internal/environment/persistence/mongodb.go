/*******************************************************************************
* Copyright (C) 2026 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rwth-iat/basyx-go-framework/internal/common"
	"github.com/rwth-iat/basyx-go-framework/pkg/model"
)

const (
	collectionShells              = "shells"
	collectionSubmodels           = "submodels"
	collectionConceptDescriptions = "conceptDescriptions"
)

// MongoBackend stores each identifiable object as a document carrying the
// JSON serialization. The JSON codec of the model package stays the single
// source of truth for the wire format, so documents keep the shape
// {_id, idShort, data}.
type MongoBackend struct {
	client *mongo.Client
	db     *mongo.Database
}

type mongoDocument struct {
	ID      string `bson:"_id"`
	IdShort string `bson:"idShort,omitempty"`
	Data    string `bson:"data"`
}

// NewMongoBackend connects to the MongoDB deployment at the given URI and
// verifies the connection with a ping.
func NewMongoBackend(ctx context.Context, uri string, database string) (*MongoBackend, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &MongoBackend{client: client, db: client.Database(database)}, nil
}

func (b *MongoBackend) ListShells(ctx context.Context, idShort string, limit int32, cursor string) ([]*model.AssetAdministrationShell, string, error) {
	docs, next, err := b.list(ctx, collectionShells, idShort, limit, cursor)
	if err != nil {
		return nil, "", err
	}
	shells := make([]*model.AssetAdministrationShell, 0, len(docs))
	for _, data := range docs {
		shell := &model.AssetAdministrationShell{}
		if err := json.Unmarshal([]byte(data), shell); err != nil {
			return nil, "", fmt.Errorf("unmarshal shell document: %w", err)
		}
		shells = append(shells, shell)
	}
	return shells, next, nil
}

func (b *MongoBackend) GetShell(ctx context.Context, id string) (*model.AssetAdministrationShell, error) {
	data, err := b.get(ctx, collectionShells, id)
	if err != nil {
		return nil, err
	}
	shell := &model.AssetAdministrationShell{}
	if err := json.Unmarshal([]byte(data), shell); err != nil {
		return nil, fmt.Errorf("unmarshal shell document: %w", err)
	}
	return shell, nil
}

func (b *MongoBackend) CreateShell(ctx context.Context, shell *model.AssetAdministrationShell) error {
	return b.create(ctx, collectionShells, shell.ID, shell.IdShort, shell)
}

func (b *MongoBackend) UpdateShell(ctx context.Context, shell *model.AssetAdministrationShell) error {
	return b.update(ctx, collectionShells, shell.ID, shell.IdShort, shell)
}

func (b *MongoBackend) DeleteShell(ctx context.Context, id string) error {
	return b.delete(ctx, collectionShells, id)
}

func (b *MongoBackend) ListSubmodels(ctx context.Context, idShort string, limit int32, cursor string) ([]*model.Submodel, string, error) {
	docs, next, err := b.list(ctx, collectionSubmodels, idShort, limit, cursor)
	if err != nil {
		return nil, "", err
	}
	submodels := make([]*model.Submodel, 0, len(docs))
	for _, data := range docs {
		sm := &model.Submodel{}
		if err := json.Unmarshal([]byte(data), sm); err != nil {
			return nil, "", fmt.Errorf("unmarshal submodel document: %w", err)
		}
		submodels = append(submodels, sm)
	}
	return submodels, next, nil
}

func (b *MongoBackend) GetSubmodel(ctx context.Context, id string) (*model.Submodel, error) {
	data, err := b.get(ctx, collectionSubmodels, id)
	if err != nil {
		return nil, err
	}
	sm := &model.Submodel{}
	if err := json.Unmarshal([]byte(data), sm); err != nil {
		return nil, fmt.Errorf("unmarshal submodel document: %w", err)
	}
	return sm, nil
}

func (b *MongoBackend) CreateSubmodel(ctx context.Context, submodel *model.Submodel) error {
	return b.create(ctx, collectionSubmodels, submodel.ID, submodel.IdShort, submodel)
}

func (b *MongoBackend) UpdateSubmodel(ctx context.Context, submodel *model.Submodel) error {
	return b.update(ctx, collectionSubmodels, submodel.ID, submodel.IdShort, submodel)
}

func (b *MongoBackend) DeleteSubmodel(ctx context.Context, id string) error {
	return b.delete(ctx, collectionSubmodels, id)
}

func (b *MongoBackend) ListConceptDescriptions(ctx context.Context, idShort string, limit int32, cursor string) ([]*model.ConceptDescription, string, error) {
	docs, next, err := b.list(ctx, collectionConceptDescriptions, idShort, limit, cursor)
	if err != nil {
		return nil, "", err
	}
	cds := make([]*model.ConceptDescription, 0, len(docs))
	for _, data := range docs {
		cd := &model.ConceptDescription{}
		if err := json.Unmarshal([]byte(data), cd); err != nil {
			return nil, "", fmt.Errorf("unmarshal concept description document: %w", err)
		}
		cds = append(cds, cd)
	}
	return cds, next, nil
}

func (b *MongoBackend) GetConceptDescription(ctx context.Context, id string) (*model.ConceptDescription, error) {
	data, err := b.get(ctx, collectionConceptDescriptions, id)
	if err != nil {
		return nil, err
	}
	cd := &model.ConceptDescription{}
	if err := json.Unmarshal([]byte(data), cd); err != nil {
		return nil, fmt.Errorf("unmarshal concept description document: %w", err)
	}
	return cd, nil
}

func (b *MongoBackend) CreateConceptDescription(ctx context.Context, cd *model.ConceptDescription) error {
	return b.create(ctx, collectionConceptDescriptions, cd.ID, cd.IdShort, cd)
}

func (b *MongoBackend) UpdateConceptDescription(ctx context.Context, cd *model.ConceptDescription) error {
	return b.update(ctx, collectionConceptDescriptions, cd.ID, cd.IdShort, cd)
}

func (b *MongoBackend) DeleteConceptDescription(ctx context.Context, id string) error {
	return b.delete(ctx, collectionConceptDescriptions, id)
}

func (b *MongoBackend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}

func (b *MongoBackend) get(ctx context.Context, collection string, id string) (string, error) {
	var doc mongoDocument
	err := b.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", common.NewErrNotFound(id)
	}
	if err != nil {
		return "", fmt.Errorf("find document: %w", err)
	}
	return doc.Data, nil
}

func (b *MongoBackend) create(ctx context.Context, collection string, id string, idShort string, obj any) error {
	bytes, err := json.Marshal(obj)
	if err != nil {
		return common.NewErrBadRequest("Failed to jsonify object")
	}

	_, err = b.db.Collection(collection).InsertOne(ctx, mongoDocument{
		ID:      id,
		IdShort: idShort,
		Data:    string(bytes),
	})
	if mongo.IsDuplicateKeyError(err) {
		return common.NewErrConflict("Object with the given ID already exists - use PUT for replacement")
	}
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

func (b *MongoBackend) update(ctx context.Context, collection string, id string, idShort string, obj any) error {
	bytes, err := json.Marshal(obj)
	if err != nil {
		return common.NewErrBadRequest("Failed to jsonify object")
	}

	res, err := b.db.Collection(collection).UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"idShort": idShort, "data": string(bytes)}},
	)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.NewErrNotFound(id)
	}
	return nil
}

func (b *MongoBackend) delete(ctx context.Context, collection string, id string) error {
	res, err := b.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.NewErrNotFound(id)
	}
	return nil
}

func (b *MongoBackend) list(ctx context.Context, collection string, idShort string, limit int32, cursor string) ([]string, string, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	filter := bson.M{}
	if strings.TrimSpace(idShort) != "" {
		filter["idShort"] = strings.TrimSpace(idShort)
	}
	if strings.TrimSpace(cursor) != "" {
		filter["_id"] = bson.M{"$gte": strings.TrimSpace(cursor)}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetLimit(int64(limit) + 1)

	cur, err := b.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return nil, "", fmt.Errorf("find documents: %w", err)
	}
	defer func() {
		_ = cur.Close(ctx)
	}()

	var documents []string
	nextCursor := ""
	readCount := int32(0)

	for cur.Next(ctx) {
		var doc mongoDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, "", fmt.Errorf("decode document: %w", err)
		}
		if readCount == limit {
			nextCursor = doc.ID
			break
		}
		documents = append(documents, doc.Data)
		readCount++
	}
	if err := cur.Err(); err != nil {
		return nil, "", fmt.Errorf("iterate documents: %w", err)
	}

	return documents, nextCursor, nil
}
