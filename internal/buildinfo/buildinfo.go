package buildinfo

// Version is rewritten by the release tool. It must stay in sync with
// manifest.json and the server startup banner.
const Version = "0.4.2"
