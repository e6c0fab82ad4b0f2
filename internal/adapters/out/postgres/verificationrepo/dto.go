// Package verificationrepo persists verification applications. The application
// row carries the version used for optimistic locking; documents, review records
// and info requests live in child tables keyed by application_id.
package verificationrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/verification"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ApplicationDTO is the verification_applications row.
type ApplicationDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SubjectType        string     `gorm:"size:16;not null"`
	SubjectID          uuid.UUID  `gorm:"type:uuid;not null;index"`
	Status             string     `gorm:"size:32;not null;index"`
	Priority           string     `gorm:"size:16;not null"`
	AssignedReviewerID *uuid.UUID `gorm:"type:uuid;index"`
	SubmittedAt        *time.Time
	CompletedAt        *time.Time
	Version            int64 `gorm:"not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`

	Documents    []DocumentDTO     `gorm:"foreignKey:ApplicationID"`
	Reviews      []ReviewRecordDTO `gorm:"foreignKey:ApplicationID"`
	InfoRequests []InfoRequestDTO  `gorm:"foreignKey:ApplicationID"`
}

func (ApplicationDTO) TableName() string {
	return "verification_applications"
}

// DocumentDTO is one verification_documents row. Position keeps the order the
// documents were listed in.
type DocumentDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ApplicationID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_verification_documents_type"`
	Type            string     `gorm:"size:64;not null;uniqueIndex:idx_verification_documents_type"`
	Position        int        `gorm:"not null"`
	Required        bool       `gorm:"not null"`
	Status          string     `gorm:"size:16;not null"`
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason string
	ReviewedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

func (DocumentDTO) TableName() string {
	return "verification_documents"
}

// ReviewRecordDTO is one verification_review_records row. The table is insert-only.
type ReviewRecordDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	ApplicationID uuid.UUID `gorm:"type:uuid;not null;index"`
	ReviewerID    uuid.UUID `gorm:"type:uuid;not null"`
	FromStatus    string    `gorm:"size:32;not null"`
	ToStatus      string    `gorm:"size:32;not null"`
	Comments      string
	RecordedAt    time.Time `gorm:"not null"`
}

func (ReviewRecordDTO) TableName() string {
	return "verification_review_records"
}

// InfoRequestDTO is one verification_info_requests row.
type InfoRequestDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ApplicationID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Message            string         `gorm:"not null"`
	DocumentsRequested pq.StringArray `gorm:"type:text[]"`
	DueDate            time.Time      `gorm:"not null;index"`
	Status             string         `gorm:"size:16;not null;index"`
	CreatedAt          time.Time
	ResolvedAt         *time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

func (InfoRequestDTO) TableName() string {
	return "verification_info_requests"
}

func fromDomain(app *verification.Application) ApplicationDTO {
	return ApplicationDTO{
		ID:                 app.ID().Bytes(),
		SubjectType:        app.SubjectType().String(),
		SubjectID:          app.SubjectID().Bytes(),
		Status:             app.Status().String(),
		Priority:           app.Priority().String(),
		AssignedReviewerID: kernel.PtrBytes(app.AssignedReviewerID()),
		SubmittedAt:        app.SubmittedAt(),
		CompletedAt:        app.CompletedAt(),
		Version:            app.Version(),
		CreatedAt:          app.CreatedAt(),
	}
}

func documentsFromDomain(app *verification.Application) []DocumentDTO {
	docs := app.Documents()
	dtos := make([]DocumentDTO, 0, len(docs))
	for i, doc := range docs {
		s := doc.State()
		dtos = append(dtos, DocumentDTO{
			ID:              s.ID.Bytes(),
			ApplicationID:   app.ID().Bytes(),
			Type:            s.Type,
			Position:        i,
			Required:        s.Required,
			Status:          s.Status.String(),
			ReviewedBy:      kernel.PtrBytes(s.ReviewedBy),
			RejectionReason: s.RejectionReason,
			ReviewedAt:      s.ReviewedAt,
			CreatedAt:       app.CreatedAt(),
		})
	}
	return dtos
}

func reviewsFromDomain(appID kernel.UUID, records []verification.ReviewRecord) []ReviewRecordDTO {
	dtos := make([]ReviewRecordDTO, 0, len(records))
	for _, r := range records {
		dtos = append(dtos, ReviewRecordDTO{
			ApplicationID: appID.Bytes(),
			ReviewerID:    r.ReviewerID().Bytes(),
			FromStatus:    r.FromStatus().String(),
			ToStatus:      r.ToStatus().String(),
			Comments:      r.Comments(),
			RecordedAt:    r.RecordedAt(),
		})
	}
	return dtos
}

func infoRequestsFromDomain(app *verification.Application) []InfoRequestDTO {
	requests := app.InfoRequests()
	dtos := make([]InfoRequestDTO, 0, len(requests))
	for _, req := range requests {
		s := req.State()
		dtos = append(dtos, InfoRequestDTO{
			ID:                 s.ID.Bytes(),
			ApplicationID:      app.ID().Bytes(),
			Message:            s.Message,
			DocumentsRequested: pq.StringArray(s.DocumentsRequested),
			DueDate:            s.DueDate,
			Status:             s.Status.String(),
			CreatedAt:          s.CreatedAt,
			ResolvedAt:         s.ResolvedAt,
		})
	}
	return dtos
}

// toDomain rebuilds the aggregate from a row with its children preloaded.
func toDomain(dto ApplicationDTO) (*verification.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	subjectID, err := kernel.UUIDFromBytes(dto.SubjectID[:])
	if err != nil {
		return nil, err
	}
	reviewerID, err := kernel.UUIDPtrFromBytes(dto.AssignedReviewerID)
	if err != nil {
		return nil, err
	}
	subjectType, err := verification.ParseSubjectType(dto.SubjectType)
	if err != nil {
		return nil, err
	}
	status, err := verification.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	priority, err := verification.ParsePriority(dto.Priority)
	if err != nil {
		return nil, err
	}

	docs := make([]*verification.Document, 0, len(dto.Documents))
	for _, d := range dto.Documents {
		doc, docErr := documentToDomain(d)
		if docErr != nil {
			return nil, docErr
		}
		docs = append(docs, doc)
	}

	reviews := make([]verification.ReviewRecord, 0, len(dto.Reviews))
	for _, r := range dto.Reviews {
		record, recordErr := reviewToDomain(r)
		if recordErr != nil {
			return nil, recordErr
		}
		reviews = append(reviews, record)
	}

	requests := make([]*verification.InfoRequest, 0, len(dto.InfoRequests))
	for _, r := range dto.InfoRequests {
		req, reqErr := infoRequestToDomain(r)
		if reqErr != nil {
			return nil, reqErr
		}
		requests = append(requests, req)
	}

	return verification.RestoreApplication(verification.ApplicationState{
		ID:                 id,
		SubjectType:        subjectType,
		SubjectID:          subjectID,
		Status:             status,
		Priority:           priority,
		AssignedReviewerID: reviewerID,
		Documents:          docs,
		Reviews:            reviews,
		InfoRequests:       requests,
		SubmittedAt:        dto.SubmittedAt,
		CompletedAt:        dto.CompletedAt,
		CreatedAt:          dto.CreatedAt,
		Version:            dto.Version,
	})
}

func documentToDomain(dto DocumentDTO) (*verification.Document, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	reviewedBy, err := kernel.UUIDPtrFromBytes(dto.ReviewedBy)
	if err != nil {
		return nil, err
	}
	status, err := verification.ParseDocumentStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return verification.RestoreDocument(verification.DocumentState{
		ID:              id,
		Type:            dto.Type,
		Required:        dto.Required,
		Status:          status,
		ReviewedBy:      reviewedBy,
		RejectionReason: dto.RejectionReason,
		ReviewedAt:      dto.ReviewedAt,
	})
}

func reviewToDomain(dto ReviewRecordDTO) (verification.ReviewRecord, error) {
	reviewer, err := kernel.UUIDFromBytes(dto.ReviewerID[:])
	if err != nil {
		return verification.ReviewRecord{}, err
	}
	from, err := verification.ParseStatus(dto.FromStatus)
	if err != nil {
		return verification.ReviewRecord{}, err
	}
	to, err := verification.ParseStatus(dto.ToStatus)
	if err != nil {
		return verification.ReviewRecord{}, err
	}
	return verification.RestoreReviewRecord(reviewer, from, to, dto.Comments, dto.RecordedAt)
}

func infoRequestToDomain(dto InfoRequestDTO) (*verification.InfoRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := verification.ParseInfoRequestStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return verification.RestoreInfoRequest(verification.InfoRequestState{
		ID:                 id,
		Message:            dto.Message,
		DocumentsRequested: []string(dto.DocumentsRequested),
		DueDate:            dto.DueDate,
		Status:             status,
		CreatedAt:          dto.CreatedAt,
		ResolvedAt:         dto.ResolvedAt,
	})
}
