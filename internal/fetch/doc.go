package fetch

// Package fetch resolves a random dog image from the dog.ceo API and
// downloads it. A fetch is two GETs: the JSON endpoint that names an image
// URL, then the image itself. Failures are classified with the sentinel
// errors from the model package, and nothing is retried.
