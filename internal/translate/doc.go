// Package translate provides the client for the remote translation
// endpoint. A request is an HTTP POST with a JSON body
// {"text": [text], "source_lang": ..., "target_lang": ...}; a success
// response carries {"translations": [{"text": ...}, ...]} of which only
// the first element is used.
//
// Failures are classified so the session can surface them: NetworkError
// for transport failures, APIError for non-2xx statuses (carrying status
// and body), and ProtocolError for malformed response shapes including
// an empty translations list. None of them are fatal; a failed
// translation leaves the target buffer untouched.
package translate
