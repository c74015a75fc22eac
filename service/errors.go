package service

import "errors"

// 失败分类。handler 层用 errors.Is 映射到业务码。
var (
	// ErrValidation 表单字段缺失/不合法
	ErrValidation = errors.New("validation failed")

	// ErrRecordNotFound 引用的行不存在
	ErrRecordNotFound = errors.New("record not found")

	// ErrUploadFailed 图片上传失败
	ErrUploadFailed = errors.New("image upload failed")

	// ErrDeleteFailed 图片删除失败
	ErrDeleteFailed = errors.New("image delete failed")

	// ErrRecordUpdateFailed 数据库写入失败
	ErrRecordUpdateFailed = errors.New("record update failed")

	// ErrLoginFailed 用户名或密码错误
	ErrLoginFailed = errors.New("invalid username or password")

	// ErrSetupCompleted /setup 已完成，不能重复执行
	ErrSetupCompleted = errors.New("setup has already been completed")
)
