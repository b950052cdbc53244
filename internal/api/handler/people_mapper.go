package handler

import (
	"github.com/edusuite/school-system/internal/core/domain"
	"github.com/edusuite/school-system/internal/core/ports"
)

// --- Request → Service input ---

func toCreateTeacherInput(req createTeacherRequest) ports.CreateTeacherInput {
	return ports.CreateTeacherInput{
		UserID:        req.UserID,
		Name:          req.Name,
		Designation:   req.Designation,
		Qualification: req.Qualification,
		Subjects:      req.Subjects,
		Classes:       req.Classes,
		Gender:        domain.Gender(req.Gender),
		DOB:           req.DOB,
		JoiningDate:   req.JoiningDate,
		Phone:         req.Phone,
		Email:         req.Email,
		Address:       req.Address,
		Photo:         req.Photo,
		Salary:        req.Salary,
	}
}

func toCreateStudentInput(req createStudentRequest) ports.CreateStudentInput {
	return ports.CreateStudentInput{
		UserID:           req.UserID,
		Name:             req.Name,
		RollNo:           req.RollNo,
		ClassID:          req.ClassID,
		SectionID:        req.SectionID,
		SchoolYearID:     req.SchoolYearID,
		Gender:           domain.Gender(req.Gender),
		DOB:              req.DOB,
		BloodGroup:       domain.BloodGroup(req.BloodGroup),
		Religion:         req.Religion,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		Photo:            req.Photo,
		ParentID:         req.ParentID,
		AdmissionDate:    req.AdmissionDate,
		GuardianName:     req.GuardianName,
		GuardianPhone:    req.GuardianPhone,
		GuardianRelation: req.GuardianRelation,
	}
}

func toStudentUpdate(req updateStudentRequest) ports.StudentUpdate {
	upd := ports.StudentUpdate{
		Name:             req.Name,
		RollNo:           req.RollNo,
		ClassID:          req.ClassID,
		SectionID:        req.SectionID,
		SchoolYearID:     req.SchoolYearID,
		DOB:              req.DOB,
		Religion:         req.Religion,
		Email:            req.Email,
		Phone:            req.Phone,
		Address:          req.Address,
		Photo:            req.Photo,
		ParentID:         req.ParentID,
		GuardianName:     req.GuardianName,
		GuardianPhone:    req.GuardianPhone,
		GuardianRelation: req.GuardianRelation,
	}
	if req.Gender != nil {
		g := domain.Gender(*req.Gender)
		upd.Gender = &g
	}
	if req.BloodGroup != nil {
		bg := domain.BloodGroup(*req.BloodGroup)
		upd.BloodGroup = &bg
	}
	return upd
}

func toCreateParentInput(req createParentRequest) ports.CreateParentInput {
	return ports.CreateParentInput{
		UserID:     req.UserID,
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		Occupation: req.Occupation,
		StudentIDs: req.StudentIDs,
	}
}
