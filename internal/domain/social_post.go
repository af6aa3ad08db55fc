package domain

import "time"

type SocialPost struct {
	ID        string    `bson:"id" json:"id"`
	Content   string    `bson:"content" json:"content"`
	MediaURL  string    `bson:"media_url,omitempty" json:"mediaUrl,omitempty"`
	Type      string    `bson:"type" json:"type"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

const PostTypeDefault = "post"
