package catalog

import (
	"fmt"
	"net/http"
)

// StatusContentReturned is the non-standard status returned by successful
// update operations together with the updated resource.
const StatusContentReturned = 209

// Operation identifies a controller operation in the catalog. The value is
// "<verb>_<resource>", where verb is one of cget (list), get, post, put or
// delete.
type Operation string

// Operations with catalog entries.
const (
	OpLogin Operation = "post_login"

	OpListUsers  Operation = "cget_users"
	OpGetUser    Operation = "get_users"
	OpCreateUser Operation = "post_users"
	OpUpdateUser Operation = "put_users"
	OpDeleteUser Operation = "delete_users"

	OpListQuestions  Operation = "cget_questions"
	OpGetQuestion    Operation = "get_questions"
	OpCreateQuestion Operation = "post_questions"
	OpUpdateQuestion Operation = "put_questions"
	OpDeleteQuestion Operation = "delete_questions"

	OpListCategories Operation = "cget_categories"
	OpGetCategory    Operation = "get_categories"
	OpCreateCategory Operation = "post_categories"
	OpUpdateCategory Operation = "put_categories"
	OpDeleteCategory Operation = "delete_categories"
	OpLinkQuestion   Operation = "put_category_questions"
	OpUnlinkQuestion Operation = "delete_category_questions"

	OpListSolutions  Operation = "cget_solutions"
	OpGetSolution    Operation = "get_solutions"
	OpCreateSolution Operation = "post_solutions"
	OpUpdateSolution Operation = "put_solutions"
	OpDeleteSolution Operation = "delete_solutions"

	OpListRationales  Operation = "cget_rationales"
	OpGetRationale    Operation = "get_rationales"
	OpCreateRationale Operation = "post_rationales"
	OpUpdateRationale Operation = "put_rationales"
	OpDeleteRationale Operation = "delete_rationales"
)

// Messages not tied to a controller operation.
const (
	MsgUnauthorized     = "UNAUTHORIZED: invalid X-Token header"
	MsgPathNotFound     = "Path not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInternalError    = "Internal server error"
)

const forbidden = "`Forbidden` You don't have permission to access"

var messages = map[string]string{
	"post_login_404": "User not found or password does not match",

	"post_users_201":   "User created",
	"delete_users_204": "User deleted",
	"put_users_209":    "User previously existed and is now updated",
	"cget_users_403":   forbidden,
	"cget_users_404":   "User object not found",
	"get_users_403":    forbidden,
	"get_users_404":    "User object not found",
	"delete_users_403": forbidden,
	"delete_users_404": "Resource not found",
	"post_users_400":   "`Bad Request` User name or e-mail already exists",
	"post_users_403":   forbidden,
	"post_users_422":   "`Unprocessable entity` User name, e-mail or password is left out",
	"put_users_400":    "`Bad Request` User name or e-mail already exists",
	"put_users_403":    forbidden,
	"put_users_404":    "User not found",

	"post_questions_201":   "Question created",
	"delete_questions_204": "Question deleted",
	"put_questions_209":    "Question previously existed and is now updated",
	"cget_questions_403":   forbidden,
	"cget_questions_404":   "Question object not found",
	"get_questions_403":    forbidden,
	"get_questions_404":    "Resource not found",
	"delete_questions_403": forbidden,
	"delete_questions_404": "Resource not found",
	"post_questions_400":   "Question already exists.",
	"post_questions_403":   forbidden,
	"post_questions_404":   "User object not found",
	"post_questions_422":   "`Unprocessable entity`",
	"put_questions_400":    "`Bad Request` Question already exists",
	"put_questions_403":    forbidden,
	"put_questions_404":    "Resource not found",

	"post_categories_201":   "Category created",
	"delete_categories_204": "Category deleted",
	"put_categories_209":    "Category previously existed and is now updated",
	"cget_categories_403":   forbidden,
	"cget_categories_404":   "Category object not found",
	"get_categories_403":    forbidden,
	"get_categories_404":    "Resource not found",
	"delete_categories_403": forbidden,
	"delete_categories_404": "Resource not found",
	"post_categories_400":   "Category with this name already exists.",
	"post_categories_403":   forbidden,
	"post_categories_422":   "`Unprocessable entity` Category name is left out",
	"put_categories_400":    "`Bad Request` Category name already exists",
	"put_categories_403":    forbidden,
	"put_categories_404":    "Resource not found",

	"put_category_questions_209":    "Question added to category",
	"put_category_questions_400":    "`Bad Request` Question does not exist",
	"put_category_questions_403":    forbidden,
	"put_category_questions_404":    "Category object not found",
	"delete_category_questions_209": "Question removed from category",
	"delete_category_questions_400": "`Bad Request` Question does not exist",
	"delete_category_questions_403": forbidden,
	"delete_category_questions_404": "Category object not found",

	"post_solutions_201":   "Solution created",
	"delete_solutions_204": "Solution deleted",
	"put_solutions_209":    "Solution previously existed and is now updated",
	"cget_solutions_404":   "Solution object not found",
	"get_solutions_403":    forbidden,
	"get_solutions_404":    "Resource not found",
	"delete_solutions_403": forbidden,
	"delete_solutions_404": "Resource not found",
	"post_solutions_400":   "`Bad Request` Question does not exist",
	"post_solutions_403":   forbidden,
	"post_solutions_422":   "`Unprocessable entity` Student, question title, proposed solution or question is left out",
	"put_solutions_400":    "`Bad Request` Solution field value already exists",
	"put_solutions_403":    forbidden,
	"put_solutions_404":    "Resource not found",

	"post_rationales_201":   "Rationale created",
	"delete_rationales_204": "Rationale deleted",
	"put_rationales_209":    "Rationale previously existed and is now updated",
	"cget_rationales_403":   forbidden,
	"cget_rationales_404":   "Rationale object not found",
	"get_rationales_403":    forbidden,
	"get_rationales_404":    "Resource not found",
	"delete_rationales_403": forbidden,
	"delete_rationales_404": "Resource not found",
	"post_rationales_400":   "`Bad Request` Solution does not exist",
	"post_rationales_403":   forbidden,
	"post_rationales_422":   "`Unprocessable entity` Title, justify or solution is left out",
	"put_rationales_400":    "`Bad Request` Solution does not exist",
	"put_rationales_403":    forbidden,
	"put_rationales_404":    "Resource not found",
}

// Message returns the catalog message for the operation and status. Unknown
// pairs fall back to Generic(status).
func Message(op Operation, status int) string {
	if msg, ok := Lookup(op, status); ok {
		return msg
	}
	return Generic(status)
}

// Lookup returns the message registered for the operation and status.
func Lookup(op Operation, status int) (string, bool) {
	msg, ok := messages[fmt.Sprintf("%s_%d", op, status)]
	return msg, ok
}

// Generic returns the status-level message used when an operation has no
// specific entry.
func Generic(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return MsgUnauthorized
	case http.StatusForbidden:
		return forbidden
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusMethodNotAllowed:
		return MsgMethodNotAllowed
	case http.StatusBadRequest:
		return "`Bad Request`"
	case http.StatusUnprocessableEntity:
		return "`Unprocessable entity`"
	case http.StatusInternalServerError:
		return MsgInternalError
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	if status == StatusContentReturned {
		return "Content returned"
	}
	return fmt.Sprintf("Status %d", status)
}
