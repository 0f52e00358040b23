package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/ammafood/amma-api/models"
	"github.com/ammafood/amma-api/services"
	"github.com/ammafood/amma-api/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
)

// GetMenu serves the storefront menu, available items first, optionally
// filtered by category.
func GetMenu(ctx *gin.Context) {
	items := services.Default.GetMenu(ctx.Request.Context())

	if category := ctx.Query("category"); category != "" {
		filtered := make([]models.MenuItem, 0, len(items))
		for _, item := range items {
			if item.Category == category {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].IsAvailable && !items[j].IsAvailable
	})

	sendJSONResponse(ctx, http.StatusOK, gin.H{"menu": items})
}

func CreateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if err := services.Default.SaveMenuItem(ctx.Request.Context(), &item); err != nil {
		log.Println("Menu save error:", err)
		sendErrorResponse(ctx, http.StatusInsufficientStorage, err.Error())
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, item)
}

func UpdateMenuItem(ctx *gin.Context) {
	var item models.MenuItem
	if err := ctx.ShouldBindJSON(&item); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	item.ID = ctx.Param("id")
	if err := services.Default.SaveMenuItem(ctx.Request.Context(), &item); err != nil {
		log.Println("Menu save error:", err)
		sendErrorResponse(ctx, http.StatusInsufficientStorage, err.Error())
		return
	}
	sendJSONResponse(ctx, http.StatusOK, item)
}

func DeleteMenuItem(ctx *gin.Context) {
	if err := services.Default.DeleteMenuItem(ctx.Request.Context(), ctx.Param("id")); err != nil {
		log.Println("Menu delete error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Menu item deleted"})
}

func SeedMenu(ctx *gin.Context) {
	if err := services.Default.SeedInitialMenu(ctx.Request.Context()); err != nil {
		log.Println("Menu seed error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalError)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Seed menu restored"})
}

func getAWSUploader() (*manager.Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return nil, fmt.Errorf("error loading AWS config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return manager.NewUploader(client), nil
}

// UploadMenuImage downscales and re-encodes an uploaded image. With an S3
// bucket configured the JPEG is uploaded and its URL returned; otherwise the
// image comes back as an inline data URI.
func UploadMenuImage(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "No image uploaded")
		return
	}

	f, err := file.Open()
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Could not read uploaded file")
		return
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Could not read uploaded file")
		return
	}

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		dataURI, err := utils.ImageDataURI(data)
		if err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, "Failed to process image")
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"image": dataURI})
		return
	}

	resized, err := utils.ResizeImage(data)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Failed to process image")
		return
	}

	uploader, err := getAWSUploader()
	if err != nil {
		log.Println("AWS config error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to configure AWS")
		return
	}

	key := fmt.Sprintf("menu-%s-%s", time.Now().Format("20060102150405"), file.Filename)
	result, err := uploader.Upload(context.TODO(), &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(resized),
		ACL:         "public-read",
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		log.Printf("Error uploading image %s: %v", file.Filename, err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Image upload failed")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"image": result.Location})
}
