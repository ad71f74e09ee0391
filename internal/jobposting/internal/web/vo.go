package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirehub/internal/jobposting/internal/domain"
)

type Job struct {
	ID                      int64    `json:"id,omitempty"`
	Title                   string   `json:"title,omitempty"`
	Description             string   `json:"description,omitempty"`
	RequiredSkills          []string `json:"requiredSkills,omitempty"`
	RequiredExperienceYears float64  `json:"requiredExperienceYears,omitempty"`
	Location                string   `json:"location,omitempty"`
	Status                  string   `json:"status,omitempty"`
	OwnerID                 int64    `json:"ownerId,omitempty"`
	Ctime                   int64    `json:"ctime,omitempty"`
	Utime                   int64    `json:"utime,omitempty"`
}

func newJob(job domain.Job) Job {
	return Job{
		ID:                      job.ID,
		Title:                   job.Title,
		Description:             job.Description,
		RequiredSkills:          job.RequiredSkills,
		RequiredExperienceYears: job.RequiredExperienceYears,
		Location:                job.Location,
		Status:                  job.Status.String(),
		OwnerID:                 job.OwnerID,
		Ctime:                   job.Ctime,
		Utime:                   job.Utime,
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		ID:                      j.ID,
		Title:                   j.Title,
		Description:             j.Description,
		RequiredSkills:          j.RequiredSkills,
		RequiredExperienceYears: j.RequiredExperienceYears,
		Location:                j.Location,
	}
}

type SaveReq struct {
	Job Job `json:"job"`
}

type IdReq struct {
	ID int64 `json:"id"`
}

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type JobList struct {
	Total int64 `json:"total"`
	List  []Job `json:"list"`
}

func newJobList(jobs []domain.Job, total int64) JobList {
	return JobList{
		Total: total,
		List: slice.Map(jobs, func(idx int, src domain.Job) Job {
			return newJob(src)
		}),
	}
}
