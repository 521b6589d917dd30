package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"wetlandwarden/internal/domain/entity"
	"wetlandwarden/internal/domain/repository"
)

type firestoreDriveRepository struct {
	client *firestore.Client
}

func NewFirestoreDriveRepository(client *firestore.Client) repository.DriveRepository {
	return &firestoreDriveRepository{
		client: client,
	}
}

func (r *firestoreDriveRepository) Create(ctx context.Context, drive *entity.CommunityDrive) error {
	_, err := r.client.Collection("community_drives").Doc(drive.ID).Set(ctx, drive)
	return err
}

func (r *firestoreDriveRepository) GetByID(ctx context.Context, id string) (*entity.CommunityDrive, error) {
	doc, err := r.client.Collection("community_drives").Doc(id).Get(ctx)
	if err != nil {
		return nil, err
	}

	var drive entity.CommunityDrive
	if err := doc.DataTo(&drive); err != nil {
		return nil, err
	}

	return &drive, nil
}

func (r *firestoreDriveRepository) List(ctx context.Context, limit, offset int) ([]*entity.CommunityDrive, int64, error) {
	query := r.client.Collection("community_drives").OrderBy("createdAt", firestore.Desc)

	countDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, err
	}
	total := int64(len(countDocs))

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var drives []*entity.CommunityDrive

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, err
		}

		var drive entity.CommunityDrive
		if err := doc.DataTo(&drive); err != nil {
			return nil, 0, err
		}
		drives = append(drives, &drive)
	}

	return drives, total, nil
}

func (r *firestoreDriveRepository) ListByCreator(ctx context.Context, userID string) ([]*entity.CommunityDrive, error) {
	iter := r.client.Collection("community_drives").Where("creatorID", "==", userID).Documents(ctx)

	var drives []*entity.CommunityDrive
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var drive entity.CommunityDrive
		if err := doc.DataTo(&drive); err != nil {
			return nil, err
		}
		drives = append(drives, &drive)
	}

	return drives, nil
}

// participantDocID makes the (user, drive) pair the document identity so
// the store itself rejects duplicate joins.
func participantDocID(userID, driveID string) string {
	return fmt.Sprintf("%s_%s", userID, driveID)
}

func (r *firestoreDriveRepository) AddParticipant(ctx context.Context, participant *entity.DriveParticipant) error {
	docID := participantDocID(participant.UserID, participant.DriveID)
	_, err := r.client.Collection("drive_participants").Doc(docID).Create(ctx, participant)
	if status.Code(err) == codes.AlreadyExists {
		return repository.ErrAlreadyParticipant
	}
	return err
}

func (r *firestoreDriveRepository) RemoveParticipant(ctx context.Context, userID, driveID string) error {
	docRef := r.client.Collection("drive_participants").Doc(participantDocID(userID, driveID))

	if _, err := docRef.Get(ctx); err != nil {
		return err
	}

	_, err := docRef.Delete(ctx)
	return err
}

func (r *firestoreDriveRepository) GetParticipant(ctx context.Context, userID, driveID string) (*entity.DriveParticipant, error) {
	doc, err := r.client.Collection("drive_participants").Doc(participantDocID(userID, driveID)).Get(ctx)
	if err != nil {
		return nil, err
	}

	var participant entity.DriveParticipant
	if err := doc.DataTo(&participant); err != nil {
		return nil, err
	}

	return &participant, nil
}

func (r *firestoreDriveRepository) ListParticipationsByUser(ctx context.Context, userID string) ([]*entity.DriveParticipant, error) {
	iter := r.client.Collection("drive_participants").Where("userID", "==", userID).Documents(ctx)

	var participations []*entity.DriveParticipant
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var participant entity.DriveParticipant
		if err := doc.DataTo(&participant); err != nil {
			return nil, err
		}
		participations = append(participations, &participant)
	}

	return participations, nil
}

func (r *firestoreDriveRepository) CountParticipants(ctx context.Context, driveID string) (int64, error) {
	docs, err := r.client.Collection("drive_participants").Where("driveID", "==", driveID).Documents(ctx).GetAll()
	if err != nil {
		return 0, err
	}
	return int64(len(docs)), nil
}
