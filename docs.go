// Package cms_sdk 市政门户内容管理 SDK
// @title Municipal CMS SDK API
// @version 1.0
// @description 市政门户后台的 RESTful API 文档：公告/新闻管理（含图片生命周期）、更新日志、维护窗口、表单提交通知
// @description
// @description ## 业务状态码说明
// @description | Code | 说明 |
// @description |------|------|
// @description | 0 | 成功 |
// @description | 10001 | 参数错误 |
// @description | 10002 | 记录不存在 |
// @description | 10003 | 用户名或密码错误 |
// @description | 10004 | Token 无效 |
// @description | 10006 | 图片上传失败 |
// @description | 10007 | 图片删除失败 |
// @description | 10008 | 初始化已完成 |
// @description | 99999 | 内部错误 |
// @description
// @description ## HTTP 状态码说明
// @description - **200**: 业务请求成功（根据 response.code 判断业务状态）
// @description - **201**: webhook 落库成功
// @description - **400**: 载荷不合法
// @description - **401**: 认证失败（未登录/Token 无效）
// @description - **403**: webhook 密钥不匹配
// @description - **500**: 服务器内部错误
//
// @contact.name API Support
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package cms_sdk
