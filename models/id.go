package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// IDLength 所有资源标识符的固定长度（24 位十六进制）
const IDLength = 24

// NewID 生成新的资源标识符
func NewID() string {
	return primitive.NewObjectID().Hex()
}
