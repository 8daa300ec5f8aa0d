package domain

// DateLayout is the layout used for calendar dates kept by the dispatch gate
// and persisted as last_sent_date.
const DateLayout = "2006-01-02"

// DefaultScheduleOffsetHours is the offset between the local time-of-day
// stored in the config and UTC, used when no offset is configured.
const DefaultScheduleOffsetHours = 8

// TriviaTitle is the title rendered on every daily trivia message.
const TriviaTitle = "Trivia of the Day"

// DefaultTriviaImageURL is the decorative image attached to the daily message
// when no image is configured.
const DefaultTriviaImageURL = "https://cdn.discordapp.com/attachments/972510204505763951/1076388478088122368/image-12.png"

// TriviaColor is the accent color of the trivia message attachment.
const TriviaColor = "#5865F2"
