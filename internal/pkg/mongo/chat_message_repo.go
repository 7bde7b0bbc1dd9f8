package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChatMessageRepo interface {
	SaveMessage(ctx context.Context, msg *ChatMessage) error
	ListByGroup(ctx context.Context, groupID uint64) ([]*ChatMessage, error)
	CountByUser(ctx context.Context, userID uint64) (int64, error)
}

type chatMessageRepoImpl struct {
	col *mongo.Collection
}

func NewChatMessageRepo(db *mongo.Database) ChatMessageRepo {
	return &chatMessageRepoImpl{
		col: db.Collection("chat_messages"),
	}
}

// SaveMessage 将消息存入 MongoDB，回填生成的 ObjectID
func (s *chatMessageRepoImpl) SaveMessage(ctx context.Context, msg *ChatMessage) error {
	if msg.ID == "" {
		msg.ID = primitive.NewObjectID().Hex()
	}
	_, err := s.col.InsertOne(ctx, msg)
	return err
}

// ListByGroup 拉取小组全量消息，按 (created_at, _id) 升序
func (s *chatMessageRepoImpl) ListByGroup(ctx context.Context, groupID uint64) ([]*ChatMessage, error) {
	filter := bson.M{"group_id": groupID}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := s.col.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var messages []*ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}

	return messages, nil
}

// CountByUser 统计用户累计发送的消息数（成就 messages 指标）
func (s *chatMessageRepoImpl) CountByUser(ctx context.Context, userID uint64) (int64, error) {
	return s.col.CountDocuments(ctx, bson.M{"user_id": userID})
}
