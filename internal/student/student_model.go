package student

import "github.com/DhavalSuthar-24/acecourt/internal/models"

type CreateStudentRequest struct {
	Name            string               `json:"name" binding:"required" example:"Emma Wilson"`
	Age             *int                 `json:"age" binding:"required,gte=0,lte=120" example:"10"`
	Email           *string              `json:"email" binding:"omitempty,email"`
	Phone           *string              `json:"phone"`
	ParentName      *string              `json:"parentName"`
	ParentPhone     *string              `json:"parentPhone"`
	BatchID         *uint                `json:"batchId"`
	ProfileImageURL *string              `json:"profileImageUrl" binding:"omitempty,url"`
	Status          models.StudentStatus `json:"status" binding:"omitempty,student_status" example:"active"`
}

func (r CreateStudentRequest) toInput() models.NewStudent {
	return models.NewStudent{
		Name:            r.Name,
		Age:             *r.Age,
		Email:           r.Email,
		Phone:           r.Phone,
		ParentName:      r.ParentName,
		ParentPhone:     r.ParentPhone,
		BatchID:         r.BatchID,
		ProfileImageURL: r.ProfileImageURL,
		Status:          r.Status,
	}
}

// UpdateStudentRequest changes only the keys present in the body. Nullable
// fields are cleared by an explicit null.
type UpdateStudentRequest struct {
	Name            *string                 `json:"name" binding:"omitempty,min=1"`
	Age             *int                    `json:"age" binding:"omitempty,gte=0,lte=120"`
	Email           models.Nullable[string] `json:"email" swaggertype:"string"`
	Phone           models.Nullable[string] `json:"phone" swaggertype:"string"`
	ParentName      models.Nullable[string] `json:"parentName" swaggertype:"string"`
	ParentPhone     models.Nullable[string] `json:"parentPhone" swaggertype:"string"`
	BatchID         models.Nullable[uint]   `json:"batchId" swaggertype:"integer"`
	ProfileImageURL models.Nullable[string] `json:"profileImageUrl" swaggertype:"string"`
	Status          *models.StudentStatus   `json:"status" binding:"omitempty,student_status"`
}

func (r UpdateStudentRequest) toPatch() models.StudentPatch {
	return models.StudentPatch{
		Name:            r.Name,
		Age:             r.Age,
		Email:           r.Email,
		Phone:           r.Phone,
		ParentName:      r.ParentName,
		ParentPhone:     r.ParentPhone,
		BatchID:         r.BatchID,
		ProfileImageURL: r.ProfileImageURL,
		Status:          r.Status,
	}
}
