package queries

import (
	"database/sql"

	"github.com/google/uuid"

	"github.com/wellnestapp/wellnest-backend/app/models"
)

// GetAllArticles retrieves all wellness articles ordered by created_at desc
func GetAllArticles(db *sql.DB) ([]models.Article, error) {
	query := `SELECT id, title, subtitle, category, media_url, duration, author, description, created_at FROM articles ORDER BY created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Subtitle, &a.Category, &a.MediaURL, &a.Duration, &a.Author, &a.Description, &a.CreatedAt); err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return articles, nil
}

func GetArticleByID(db *sql.DB, id uuid.UUID) (models.Article, error) {
	var a models.Article
	query := `SELECT id, title, subtitle, category, media_url, duration, author, description, created_at FROM articles WHERE id = $1`
	err := db.QueryRow(query, id).Scan(&a.ID, &a.Title, &a.Subtitle, &a.Category, &a.MediaURL, &a.Duration, &a.Author, &a.Description, &a.CreatedAt)
	if err != nil {
		return a, err
	}
	return a, nil
}

func CreateArticle(db *sql.DB, a *models.Article) error {
	query := `INSERT INTO articles (id, title, subtitle, category, media_url, duration, author, description, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := db.Exec(query, a.ID, a.Title, a.Subtitle, a.Category, a.MediaURL, a.Duration, a.Author, a.Description, a.CreatedAt)
	return err
}
