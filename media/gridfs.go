package media

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
)

// GridFSStore keeps image bytes in a GridFS bucket and serves them back from
// the media endpoint. Used when no Cloudinary URL is configured, so a bare
// deployment still works end to end.
type GridFSStore struct {
	db *mongo.Database
}

func NewGridFSStore(client *mongo.Client, dbName string) *GridFSStore {
	return &GridFSStore{db: client.Database(dbName)}
}

func (s *GridFSStore) Upload(_ context.Context, file *multipart.FileHeader, folder string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		return "", err
	}

	stream, err := bucket.OpenUploadStream(folder + "/" + file.Filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(stream, src); err != nil {
		stream.Close()
		return "", err
	}
	if err := stream.Close(); err != nil {
		return "", err
	}

	return "/api/media/" + stream.FileID.(primitive.ObjectID).Hex(), nil
}

// ServeHTTP streams a stored file back; GET /api/media/{id}.
func (s *GridFSStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		notFound(w)
		return
	}

	bucket, err := gridfs.NewBucket(s.db)
	if err != nil {
		log.Error().Err(err).Msg("gridfs bucket open failed")
		notFound(w)
		return
	}

	stream, err := bucket.OpenDownloadStream(objID)
	if err != nil {
		notFound(w)
		return
	}
	defer stream.Close()

	data, err := io.ReadAll(stream)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("gridfs read failed")
		notFound(w)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Write(data)
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "File not found"})
}
