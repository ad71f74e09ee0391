package web

import "github.com/ecodeclub/hirehub/internal/attachment/internal/domain"

type AttachmentRef struct {
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"sizeBytes"`
	ContentType string `json:"contentType"`
	StorageKey  string `json:"storageKey"`
	UploadedAt  int64  `json:"uploadedAt"`
}

func newAttachmentRef(ref domain.Ref) AttachmentRef {
	return AttachmentRef{
		Filename:    ref.Filename,
		SizeBytes:   ref.SizeBytes,
		ContentType: ref.ContentType,
		StorageKey:  ref.StorageKey,
		UploadedAt:  ref.UploadedAt,
	}
}

type DownloadURLReq struct {
	StorageKey string `json:"storageKey"`
}

type DownloadURLResp struct {
	URL string `json:"url"`
}
