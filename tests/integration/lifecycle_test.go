package integration

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/docfill/docfill-go/db"
	"github.com/docfill/docfill-go/models"
	"github.com/docfill/docfill-go/pkg/docx"
	"github.com/docfill/docfill-go/response"
	"github.com/stretchr/testify/require"
)

func loginUser(t *testing.T, username, password string) response.TokenResponse {
	body := map[string]string{"username": username, "password": password}
	resp := doRequest(t, "POST", "/login", "", body, http.StatusOK)

	var result response.TokenResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &result))
	require.NotEmpty(t, result.Token)
	return result
}

func buildTestDocx(t *testing.T, paragraph string) []byte {
	t.Helper()
	documentXML := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">` +
		`<w:body><w:p><w:r><w:t>` + paragraph + `</w:t></w:r></w:p></w:body></w:document>`

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func uploadTemplate(t *testing.T, token, name, fileName string, data []byte) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("name", name))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/templates/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLogin(t *testing.T) {
	result := loginUser(t, "alice", "123456")
	require.Equal(t, "alice", result.Username)
	require.True(t, result.IsAdmin)
}

func TestTemplateRoutesRequireAdmin(t *testing.T) {
	user := loginUser(t, "carol", "123456")
	doRequest(t, "GET", "/templates", user.Token, nil, http.StatusForbidden)
}

func TestDocumentLifecycle(t *testing.T) {
	admin := loginUser(t, "alice", "123456")
	user := loginUser(t, "bob", "123456")

	// upload template
	w := uploadTemplate(t, admin.Token, "Offer Letter", "offer.docx", buildTestDocx(t, "Dear NAME, welcome."))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var tplResp struct {
		Data struct{ ID uint }
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tplResp))
	templateID := tplResp.Data.ID

	// declare the field substitution looks for
	resp := doRequest(t, "POST", fmt.Sprintf("/templates/%d/fields", templateID), admin.Token, map[string]string{
		"field_id":       "name",
		"label":          "Name",
		"original_value": "NAME",
	}, http.StatusCreated)
	var fieldResp struct {
		Data struct{ ID uint }
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &fieldResp))
	fieldID := fieldResp.Data.ID

	// assign to bob
	doRequest(t, "POST", fmt.Sprintf("/templates/%d/assign", templateID), admin.Token, map[string]interface{}{
		"user_ids": []uint{user.UID},
	}, http.StatusOK)

	// bob sees a pending assignment
	resp = doRequest(t, "GET", "/assignments/my", user.Token, nil, http.StatusOK)
	var listResp struct {
		Data []struct {
			ID     uint
			Status string `json:"status"`
		}
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listResp))
	require.Len(t, listResp.Data, 1)
	require.Equal(t, "pending", listResp.Data[0].Status)
	assignmentID := listResp.Data[0].ID

	// completing before submitting any value must fail
	doRequest(t, "POST", fmt.Sprintf("/assignments/%d/complete", assignmentID), user.Token, nil, http.StatusBadRequest)

	// submitting moves the assignment to in_progress
	resp = doRequest(t, "POST", "/assignments/submit-values", user.Token, map[string]interface{}{
		"assignment_id": assignmentID,
		"field_values":  map[string]string{"name": "Alice"},
	}, http.StatusOK)
	require.Contains(t, resp.Body.String(), "in_progress")

	// complete
	resp = doRequest(t, "POST", fmt.Sprintf("/assignments/%d/complete", assignmentID), user.Token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "completed")

	// download the generated document and check the substitution
	resp = doRequest(t, "GET", fmt.Sprintf("/assignments/%d/download", assignmentID), user.Token, nil, http.StatusOK)
	doc, err := docx.Load(resp.Body.Bytes())
	require.NoError(t, err)
	require.Equal(t, "Dear Alice, welcome.\n", doc.Text())

	// other users may not download
	carol := loginUser(t, "carol", "123456")
	doRequest(t, "GET", fmt.Sprintf("/assignments/%d/download", assignmentID), carol.Token, nil, http.StatusForbidden)

	// the owner sees the completed assignment
	resp = doRequest(t, "GET", "/assignments/completed", admin.Token, nil, http.StatusOK)
	require.Contains(t, resp.Body.String(), "bob")

	// and can export the batch as a zip archive
	resp = doRequest(t, "GET", fmt.Sprintf("/assignments/completed/export?template_id=%d", templateID), admin.Token, nil, http.StatusOK)
	zr, err := zip.NewReader(bytes.NewReader(resp.Body.Bytes()), int64(resp.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	require.Equal(t, "bob/bob__Offer_Letter.docx", zr.File[0].Name)

	// deleting the field also removes bob's submitted value
	doRequest(t, "DELETE", fmt.Sprintf("/templates/fields/%d", fieldID), admin.Token, nil, http.StatusOK)
	var count int64
	db.DB.Model(&models.FieldValue{}).Where("assignment_id = ?", assignmentID).Count(&count)
	require.Zero(t, count)

	// deleting the template cascades to assignments and versions and
	// releases every stored artifact
	doRequest(t, "DELETE", fmt.Sprintf("/templates/%d", templateID), admin.Token, nil, http.StatusOK)

	resp = doRequest(t, "GET", "/assignments/my", user.Token, nil, http.StatusOK)
	require.NotContains(t, resp.Body.String(), fmt.Sprintf(`"template_id":%d`, templateID))

	db.DB.Model(&models.Field{}).Where("template_id = ?", templateID).Count(&count)
	require.Zero(t, count)
	db.DB.Model(&models.Assignment{}).Where("template_id = ?", templateID).Count(&count)
	require.Zero(t, count)
	db.DB.Model(&models.Version{}).Where("assignment_id = ?", assignmentID).Count(&count)
	require.Zero(t, count)
	require.Empty(t, objectStore)
}
