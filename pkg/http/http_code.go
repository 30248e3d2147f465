// Copyright 2026 CareConnect Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package http

var (
	Failed                        = failed(500, "Request failed")
	RequestParameterParsingFailed = failed(5001, "Request parameter parsing failed")
	InternalError                 = failed(5000, "Internal error, please contact the administrator")

	// Unauthorized 401
	Unauthorized         = failed(4401, "Unauthorized")
	AuthenticationFailed = failed(4402, "Authentication failed")
	AuthorizationEmpty   = failed(4404, "Authorization is empty")
	InvalidToken         = failed(4405, "Invalid token")
	TokenBeEmpty         = failed(4406, "Token cannot be empty")
	TokenExpired         = failed(4407, "Token is expired")
	TokenFormatIncorrect = failed(4408, "Token format is incorrect")

	// BadRequest 400
	BadRequest = failed(4000, "Bad request")
	NotFound   = failed(4004, "Not found")

	// Forbidden 403
	Forbidden         = failed(4030, "Forbidden")
	PermissionDenied  = failed(4031, "Permission denied")
	MasterAdminOnly   = failed(4032, "Only the master administrator may perform this action")
	AdminOnly         = failed(4033, "Administrator privileges required")
	AccountNotActive  = failed(4034, "Account is pending approval or disabled")
	SelfActionDenied  = failed(4035, "Action cannot target your own account")

	UserNotExist                  = failed(4041, "User does not exist")
	UserAlreadyExist              = failed(4042, "User already exists")
	UserIncorrectPassword         = failed(4043, "User incorrect password")
	UsernameArePasswordIsRequired = failed(4045, "Username and password are required")

	NewHireNotExist       = failed(4051, "New hire record does not exist")
	AmbiguousNewHireMatch = failed(4052, "Multiple new hire records match, refusing automatic transfer")

	TemplateNotExist       = failed(4061, "Document template does not exist")
	TrackingRowNotExist    = failed(4062, "Document tracking row does not exist")
	NotManuallyCompleted   = failed(4063, "Tracking row was not manually completed")
	UnknownWebhookEvent    = failed(4064, "Unknown webhook event type")

	EventNotExist        = failed(4071, "Calendar event does not exist")
	SeriesNotExist       = failed(4072, "Calendar series does not exist")

	QuestionNotExist       = failed(4081, "Question does not exist")
	AnswerNotExist         = failed(4082, "Answer does not exist")
	QuestionDailyLimit     = failed(4083, "Only one question may be posted per day")
	AcceptNotAllowed       = failed(4084, "Only the question author or an admin may accept an answer")

	ResourceNotExist    = failed(4091, "Resource does not exist")
	FileTooLarge        = failed(4092, "File exceeds the 20 MB upload limit")
	UnsupportedFileType = failed(4093, "File type is not allowed")
)

var (
	Success = success(200, "Request Success")
)

func failed(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}

func success(code int, msg string) *Response {
	return &Response{
		Code:   code,
		Msg:    msg,
		Detail: nil,
	}
}
