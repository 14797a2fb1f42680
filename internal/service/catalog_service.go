package service

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"edu_hub_backend/internal/model"
	"edu_hub_backend/internal/util"

	"gorm.io/gorm"
)

type SubjectStore interface {
	Create(subject *model.Subject) error
	FindByID(id uint) (*model.Subject, error)
	List() ([]model.Subject, error)
	DeleteCascade(id uint) error
}

type ResourceStore interface {
	Create(resource *model.Resource) error
	FindByID(id uint) (*model.Resource, error)
	FindBySubject(subjectID uint) ([]model.Resource, error)
	Delete(id uint) error
}

// CatalogService 课程与资源目录。所有变更操作都要求调用方是目标的属主教师。
type CatalogService struct {
	Subjects  SubjectStore
	Resources ResourceStore
}

func NewCatalogService(subjects SubjectStore, resources ResourceStore) *CatalogService {
	return &CatalogService{Subjects: subjects, Resources: resources}
}

func (s *CatalogService) CreateSubject(owner *model.User, name, description, externalURL string) (*model.Subject, error) {
	name = strings.TrimSpace(name)
	if n := utf8.RuneCountInString(name); n < 3 || n > 100 {
		return nil, fmt.Errorf("%w: subject name must be 3-100 characters", util.ErrValidation)
	}
	if externalURL != "" && !validHTTPURL(externalURL) {
		return nil, fmt.Errorf("%w: externalUrl must be a valid http(s) URL", util.ErrValidation)
	}

	subject := &model.Subject{
		Name:        name,
		Description: description,
		ExternalURL: externalURL,
		OwnerID:     owner.ID,
		Owner:       *owner,
	}
	if err := s.Subjects.Create(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// DeleteSubject 属主删除课程，级联清理其资源与评价
func (s *CatalogService) DeleteSubject(caller *model.User, id uint) error {
	subject, err := s.findSubject(id)
	if err != nil {
		return err
	}
	if subject.OwnerID != caller.ID {
		return fmt.Errorf("%w: only the owning teacher can delete a subject", util.ErrPermissionDenied)
	}
	return s.Subjects.DeleteCascade(id)
}

func (s *CatalogService) CreateResource(caller *model.User, subjectID uint, title string, kind model.ResourceKind, rawURL, description string) (*model.Resource, error) {
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > 255 {
		return nil, fmt.Errorf("%w: title must be 1-255 characters", util.ErrValidation)
	}
	if !model.ValidResourceKind(kind) {
		return nil, fmt.Errorf("%w: kind must be one of document, presentation, video, link", util.ErrValidation)
	}
	if !validHTTPURL(rawURL) {
		return nil, fmt.Errorf("%w: url must be a valid http(s) URL", util.ErrValidation)
	}

	subject, err := s.findSubject(subjectID)
	if err != nil {
		return nil, err
	}
	// 归属校验用的是此刻的属主，不是令牌签发时的
	if subject.OwnerID != caller.ID {
		return nil, fmt.Errorf("%w: resources can only be added to your own subjects", util.ErrPermissionDenied)
	}

	resource := &model.Resource{
		SubjectID:   subjectID,
		Title:       title,
		Description: description,
		Kind:        kind,
		URL:         rawURL,
		UploaderID:  caller.ID,
	}
	if err := s.Resources.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

func (s *CatalogService) DeleteResource(caller *model.User, id uint) error {
	resource, err := s.Resources.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: resource not found", util.ErrNotFound)
		}
		return err
	}
	if resource.UploaderID != caller.ID {
		return fmt.Errorf("%w: only the uploader can delete a resource", util.ErrPermissionDenied)
	}
	return s.Resources.Delete(id)
}

// ListSubjects 公开目录，按名称排序
func (s *CatalogService) ListSubjects() ([]model.Subject, error) {
	return s.Subjects.List()
}

func (s *CatalogService) GetSubject(id uint) (*model.Subject, []model.Resource, error) {
	subject, err := s.findSubject(id)
	if err != nil {
		return nil, nil, err
	}
	resources, err := s.Resources.FindBySubject(id)
	if err != nil {
		return nil, nil, err
	}
	return subject, resources, nil
}

func (s *CatalogService) findSubject(id uint) (*model.Subject, error) {
	subject, err := s.Subjects.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: subject not found", util.ErrNotFound)
		}
		return nil, err
	}
	return subject, nil
}

func validHTTPURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
