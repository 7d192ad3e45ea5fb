// Package domain defines the persistence models for topics, users, articles,
// and comments. These types are mapped with GORM and form the core data layer
// of the news API.
package domain

import "time"

// DefaultArticleImgURL is stored when an article is created without an image.
const DefaultArticleImgURL = "https://images.pexels.com/photos/97050/pexels-photo-97050.jpeg?w=700&h=700"

// Topic is a category that articles are filed under. Its slug is the natural
// primary key referenced by articles.topic.
type Topic struct {
	Slug        string `json:"slug"        gorm:"type:varchar(255);primaryKey;not null"`
	Description string `json:"description" gorm:"type:varchar(1000);not null;default:''"`
}

// TableName returns the database table name for Topic.
func (Topic) TableName() string { return "topics" }

// User is a registered author. Username is the natural primary key referenced
// by articles.author and comments.author.
type User struct {
	Username  string `json:"username"   gorm:"type:varchar(255);primaryKey;not null"`
	Name      string `json:"name"       gorm:"type:varchar(255);not null"`
	AvatarURL string `json:"avatar_url" gorm:"type:varchar(1000);not null;default:''"`
}

// TableName returns the database table name for User.
func (User) TableName() string { return "users" }

// Article is a single news item.
//
// Fields:
//   - ArticleID: auto-increment primary key.
//   - Topic: FK to topics.slug.
//   - Author: FK to users.username.
//   - Votes: running vote total; updated with relative deltas only.
//   - CommentCount: computed on read, never stored.
type Article struct {
	ArticleID     int64     `json:"article_id"      gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title"           gorm:"type:varchar(255);not null"`
	Topic         string    `json:"topic"           gorm:"type:varchar(255);not null;index"`
	Author        string    `json:"author"          gorm:"type:varchar(255);not null;index"`
	Body          string    `json:"body"            gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at"      gorm:"not null;index"`
	Votes         int64     `json:"votes"           gorm:"not null;default:0"`
	ArticleImgURL string    `json:"article_img_url" gorm:"type:varchar(1000);not null"`
	CommentCount  int64     `json:"comment_count"   gorm:"->;-:migration"`

	TopicRef  Topic     `json:"-" gorm:"foreignKey:Topic;references:Slug;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	AuthorRef User      `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Comments  []Comment `json:"-" gorm:"foreignKey:ArticleID;references:ArticleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return "articles" }

// ArticleSummary is the list projection of an article: everything but the body.
type ArticleSummary struct {
	ArticleID     int64     `json:"article_id"`
	Title         string    `json:"title"`
	Topic         string    `json:"topic"`
	Author        string    `json:"author"`
	CreatedAt     time.Time `json:"created_at"`
	Votes         int64     `json:"votes"`
	ArticleImgURL string    `json:"article_img_url"`
	CommentCount  int64     `json:"comment_count"`
}

// TableName returns the database table name backing ArticleSummary.
func (ArticleSummary) TableName() string { return "articles" }

// Comment is a reader's reply on an article. The article_id foreign key is
// declared by Article.Comments, which cascades deletes.
type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	Body      string    `json:"body"       gorm:"type:text;not null"`
	ArticleID int64     `json:"article_id" gorm:"not null;index:idx_article_comments,priority:1"`
	Author    string    `json:"author"     gorm:"type:varchar(255);not null;index"`
	Votes     int64     `json:"votes"      gorm:"not null;default:0"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index:idx_article_comments,priority:2"`

	AuthorRef User `json:"-" gorm:"foreignKey:Author;references:Username;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }
